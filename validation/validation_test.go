package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"TareasWebService/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask_Pass(t *testing.T) {
	v := New()

	violations := v.CreateTask(commands.CreateTaskCommand{Title: "Buy milk"})
	assert.Empty(t, violations)

	violations = v.CreateTask(commands.CreateTaskCommand{
		Title:       strings.Repeat("a", 255),
		Description: strings.Repeat("d", 1000),
	})
	assert.Empty(t, violations)
}

func TestCreateTask_FirstFailingRulePerFieldWins(t *testing.T) {
	v := New()

	// An empty title fails both required and max chains; only the
	// required message is reported.
	violations := v.CreateTask(commands.CreateTaskCommand{Title: ""})
	require.Len(t, violations, 1)
	assert.Equal(t, MsgTitleRequired, violations[0].Msg)
	assert.Equal(t, "title", violations[0].Field)

	violations = v.CreateTask(commands.CreateTaskCommand{Title: strings.Repeat("a", 256)})
	require.Len(t, violations, 1)
	assert.Equal(t, MsgTitleTooLong, violations[0].Msg)
}

func TestCreateTask_ViolationsInDeclarationOrder(t *testing.T) {
	v := New()

	violations := v.CreateTask(commands.CreateTaskCommand{
		Title:       "",
		Description: strings.Repeat("d", 1001),
	})
	require.Len(t, violations, 2)
	assert.Equal(t, MsgTitleRequired, violations[0].Msg)
	assert.Equal(t, MsgDescriptionTooLong, violations[1].Msg)
}

func TestUpdateTask_AllFieldsOptional(t *testing.T) {
	v := New()

	assert.Empty(t, v.UpdateTask(commands.UpdateTaskCommand{}))

	completed := true
	assert.Empty(t, v.UpdateTask(commands.UpdateTaskCommand{Completed: &completed}))
}

func TestUpdateTask_RulesApplyToPresentFields(t *testing.T) {
	v := New()

	blank := "  "
	violations := v.UpdateTask(commands.UpdateTaskCommand{Title: &blank})
	require.Len(t, violations, 1)
	assert.Equal(t, MsgTitleRequired, violations[0].Msg)

	long := strings.Repeat("a", 256)
	violations = v.UpdateTask(commands.UpdateTaskCommand{Title: &long})
	require.Len(t, violations, 1)
	assert.Equal(t, MsgTitleTooLong, violations[0].Msg)

	longDesc := strings.Repeat("d", 1001)
	violations = v.UpdateTask(commands.UpdateTaskCommand{Description: &longDesc})
	require.Len(t, violations, 1)
	assert.Equal(t, MsgDescriptionTooLong, violations[0].Msg)
	assert.Equal(t, "description", violations[0].Field)
}

func TestFromDecodeError_CompletedType(t *testing.T) {
	var cmd commands.UpdateTaskCommand
	err := json.Unmarshal([]byte(`{"completed":"maybe"}`), &cmd)
	require.Error(t, err)

	violations, ok := FromDecodeError(err)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, MsgCompletedBoolean, violations[0].Msg)
	assert.Equal(t, "completed", violations[0].Field)
}

func TestFromDecodeError_OtherErrors(t *testing.T) {
	var cmd commands.UpdateTaskCommand
	err := json.Unmarshal([]byte(`{not json`), &cmd)
	require.Error(t, err)

	_, ok := FromDecodeError(err)
	assert.False(t, ok)
}
