// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/schema"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/ent/useractionlog"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[2].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescSystemPrompt is the schema descriptor for system_prompt field.
	agentDescSystemPrompt := agentFields[3].Descriptor()
	// agent.DefaultSystemPrompt holds the default value on creation for the system_prompt field.
	agent.DefaultSystemPrompt = agentDescSystemPrompt.Default.(string)
	// agentDescDefaultModel is the schema descriptor for default_model field.
	agentDescDefaultModel := agentFields[4].Descriptor()
	// agent.DefaultDefaultModel holds the default value on creation for the default_model field.
	agent.DefaultDefaultModel = agentDescDefaultModel.Default.(string)
	// agentDescTemperature is the schema descriptor for temperature field.
	agentDescTemperature := agentFields[5].Descriptor()
	// agent.DefaultTemperature holds the default value on creation for the temperature field.
	agent.DefaultTemperature = agentDescTemperature.Default.(float64)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[7].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescCancelRequested is the schema descriptor for cancel_requested field.
	agentrunDescCancelRequested := agentrunFields[8].Descriptor()
	// agentrun.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	agentrun.DefaultCancelRequested = agentrunDescCancelRequested.Default.(bool)
	// agentrunDescMaxSteps is the schema descriptor for max_steps field.
	agentrunDescMaxSteps := agentrunFields[9].Descriptor()
	// agentrun.DefaultMaxSteps holds the default value on creation for the max_steps field.
	agentrun.DefaultMaxSteps = agentrunDescMaxSteps.Default.(int)
	// agentrunDescMaxToolCalls is the schema descriptor for max_tool_calls field.
	agentrunDescMaxToolCalls := agentrunFields[10].Descriptor()
	// agentrun.DefaultMaxToolCalls holds the default value on creation for the max_tool_calls field.
	agentrun.DefaultMaxToolCalls = agentrunDescMaxToolCalls.Default.(int)
	// agentrunDescCurrentStepIndex is the schema descriptor for current_step_index field.
	agentrunDescCurrentStepIndex := agentrunFields[11].Descriptor()
	// agentrun.DefaultCurrentStepIndex holds the default value on creation for the current_step_index field.
	agentrun.DefaultCurrentStepIndex = agentrunDescCurrentStepIndex.Default.(int)
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[16].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	// agentrunDescInputText is the schema descriptor for input_text field.
	agentrunDescInputText := agentrunFields[21].Descriptor()
	// agentrun.DefaultInputText holds the default value on creation for the input_text field.
	agentrun.DefaultInputText = agentrunDescInputText.Default.(string)
	agentstepFields := schema.AgentStep{}.Fields()
	_ = agentstepFields
	// agentstepDescCreatedAt is the schema descriptor for created_at field.
	agentstepDescCreatedAt := agentstepFields[6].Descriptor()
	// agentstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentstep.DefaultCreatedAt = agentstepDescCreatedAt.Default.(func() time.Time)
	membershipFields := schema.Membership{}.Fields()
	_ = membershipFields
	// membershipDescActive is the schema descriptor for active field.
	membershipDescActive := membershipFields[4].Descriptor()
	// membership.DefaultActive holds the default value on creation for the active field.
	membership.DefaultActive = membershipDescActive.Default.(bool)
	// membershipDescCreatedAt is the schema descriptor for created_at field.
	membershipDescCreatedAt := membershipFields[5].Descriptor()
	// membership.DefaultCreatedAt holds the default value on creation for the created_at field.
	membership.DefaultCreatedAt = membershipDescCreatedAt.Default.(func() time.Time)
	runarchiveFields := schema.RunArchive{}.Fields()
	_ = runarchiveFields
	// runarchiveDescArchivePath is the schema descriptor for archive_path field.
	runarchiveDescArchivePath := runarchiveFields[2].Descriptor()
	// runarchive.ArchivePathValidator is a validator for the "archive_path" field. It is called by the builders before save.
	runarchive.ArchivePathValidator = runarchiveDescArchivePath.Validators[0].(func(string) error)
	// runarchiveDescSummary is the schema descriptor for summary field.
	runarchiveDescSummary := runarchiveFields[3].Descriptor()
	// runarchive.DefaultSummary holds the default value on creation for the summary field.
	runarchive.DefaultSummary = runarchiveDescSummary.Default.(string)
	// runarchiveDescNotes is the schema descriptor for notes field.
	runarchiveDescNotes := runarchiveFields[4].Descriptor()
	// runarchive.DefaultNotes holds the default value on creation for the notes field.
	runarchive.DefaultNotes = runarchiveDescNotes.Default.(string)
	// runarchiveDescCreatedAt is the schema descriptor for created_at field.
	runarchiveDescCreatedAt := runarchiveFields[5].Descriptor()
	// runarchive.DefaultCreatedAt holds the default value on creation for the created_at field.
	runarchive.DefaultCreatedAt = runarchiveDescCreatedAt.Default.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescEventType is the schema descriptor for event_type field.
	runeventDescEventType := runeventFields[3].Descriptor()
	// runevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	runevent.EventTypeValidator = runeventDescEventType.Validators[0].(func(string) error)
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[6].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	subrunlinkFields := schema.SubrunLink{}.Fields()
	_ = subrunlinkFields
	// subrunlinkDescCreatedAt is the schema descriptor for created_at field.
	subrunlinkDescCreatedAt := subrunlinkFields[9].Descriptor()
	// subrunlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	subrunlink.DefaultCreatedAt = subrunlinkDescCreatedAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescToolName is the schema descriptor for tool_name field.
	toolcallDescToolName := toolcallFields[3].Descriptor()
	// toolcall.ToolNameValidator is a validator for the "tool_name" field. It is called by the builders before save.
	toolcall.ToolNameValidator = toolcallDescToolName.Validators[0].(func(string) error)
	// toolcallDescRequiresApproval is the schema descriptor for requires_approval field.
	toolcallDescRequiresApproval := toolcallFields[6].Descriptor()
	// toolcall.DefaultRequiresApproval holds the default value on creation for the requires_approval field.
	toolcall.DefaultRequiresApproval = toolcallDescRequiresApproval.Default.(bool)
	// toolcallDescStdout is the schema descriptor for stdout field.
	toolcallDescStdout := toolcallFields[13].Descriptor()
	// toolcall.DefaultStdout holds the default value on creation for the stdout field.
	toolcall.DefaultStdout = toolcallDescStdout.Default.(string)
	// toolcallDescStderr is the schema descriptor for stderr field.
	toolcallDescStderr := toolcallFields[14].Descriptor()
	// toolcall.DefaultStderr holds the default value on creation for the stderr field.
	toolcall.DefaultStderr = toolcallDescStderr.Default.(string)
	// toolcallDescCreatedAt is the schema descriptor for created_at field.
	toolcallDescCreatedAt := toolcallFields[16].Descriptor()
	// toolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolcall.DefaultCreatedAt = toolcallDescCreatedAt.Default.(func() time.Time)
	tooldefinitionFields := schema.ToolDefinition{}.Fields()
	_ = tooldefinitionFields
	// tooldefinitionDescName is the schema descriptor for name field.
	tooldefinitionDescName := tooldefinitionFields[2].Descriptor()
	// tooldefinition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tooldefinition.NameValidator = tooldefinitionDescName.Validators[0].(func(string) error)
	// tooldefinitionDescDefaultRequiresApproval is the schema descriptor for default_requires_approval field.
	tooldefinitionDescDefaultRequiresApproval := tooldefinitionFields[5].Descriptor()
	// tooldefinition.DefaultDefaultRequiresApproval holds the default value on creation for the default_requires_approval field.
	tooldefinition.DefaultDefaultRequiresApproval = tooldefinitionDescDefaultRequiresApproval.Default.(bool)
	// tooldefinitionDescEnabled is the schema descriptor for enabled field.
	tooldefinitionDescEnabled := tooldefinitionFields[6].Descriptor()
	// tooldefinition.DefaultEnabled holds the default value on creation for the enabled field.
	tooldefinition.DefaultEnabled = tooldefinitionDescEnabled.Default.(bool)
	// tooldefinitionDescCreatedAt is the schema descriptor for created_at field.
	tooldefinitionDescCreatedAt := tooldefinitionFields[7].Descriptor()
	// tooldefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	tooldefinition.DefaultCreatedAt = tooldefinitionDescCreatedAt.Default.(func() time.Time)
	useractionlogFields := schema.UserActionLog{}.Fields()
	_ = useractionlogFields
	// useractionlogDescAction is the schema descriptor for action field.
	useractionlogDescAction := useractionlogFields[3].Descriptor()
	// useractionlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	useractionlog.ActionValidator = useractionlogDescAction.Validators[0].(func(string) error)
	// useractionlogDescCreatedAt is the schema descriptor for created_at field.
	useractionlogDescCreatedAt := useractionlogFields[7].Descriptor()
	// useractionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	useractionlog.DefaultCreatedAt = useractionlogDescCreatedAt.Default.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescName is the schema descriptor for name field.
	workspaceDescName := workspaceFields[1].Descriptor()
	// workspace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workspace.NameValidator = workspaceDescName.Validators[0].(func(string) error)
	// workspaceDescActive is the schema descriptor for active field.
	workspaceDescActive := workspaceFields[2].Descriptor()
	// workspace.DefaultActive holds the default value on creation for the active field.
	workspace.DefaultActive = workspaceDescActive.Default.(bool)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[3].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
}
