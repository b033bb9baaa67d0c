// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "default_model", Type: field.TypeString, Default: ""},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "tool_policy", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_workspaces_agents",
				Columns:    []*schema.Column{AgentsColumns[7]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[7], AgentsColumns[1]},
			},
		},
	}
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "parent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "started_by", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "waiting_for_approval", "waiting_for_tool", "waiting_for_subrun", "waiting_for_user", "completed", "failed", "canceled"}, Default: "pending"},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"dashboard", "telegram", "api"}, Default: "api"},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "max_steps", Type: field.TypeInt, Default: 50},
		{Name: "max_tool_calls", Type: field.TypeInt, Default: 20},
		{Name: "current_step_index", Type: field.TypeInt, Default: 0},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "lock_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "locked_task_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_summary", Type: field.TypeString, Nullable: true},
		{Name: "input_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "final_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_agents_runs",
				Columns:    []*schema.Column{AgentRunsColumns[21]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Restrict,
			},
			{
				Symbol:     "agent_runs_workspaces_runs",
				Columns:    []*schema.Column{AgentRunsColumns[22]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[22], AgentRunsColumns[4]},
			},
			{
				Name:    "agentrun_parent_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4], AgentRunsColumns[14]},
			},
			{
				Name:    "agentrun_locked_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "locked_at IS NOT NULL",
				},
			},
			{
				Name:    "agentrun_status_ended_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4], AgentRunsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "archived_at IS NULL",
				},
			},
		},
	}
	// AgentStepsColumns holds the columns for the "agent_steps" table.
	AgentStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"plan", "model_call", "tool_call", "observation", "message", "subrun_spawn"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentStepsTable holds the schema information for the "agent_steps" table.
	AgentStepsTable = &schema.Table{
		Name:       "agent_steps",
		Columns:    AgentStepsColumns,
		PrimaryKey: []*schema.Column{AgentStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_steps_agent_runs_steps",
				Columns:    []*schema.Column{AgentStepsColumns[6]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstep_run_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{AgentStepsColumns[6], AgentStepsColumns[1]},
			},
		},
	}
	// MembershipsColumns holds the columns for the "memberships" table.
	MembershipsColumns = []*schema.Column{
		{Name: "membership_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "operator", "viewer"}},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// MembershipsTable holds the schema information for the "memberships" table.
	MembershipsTable = &schema.Table{
		Name:       "memberships",
		Columns:    MembershipsColumns,
		PrimaryKey: []*schema.Column{MembershipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memberships_workspaces_memberships",
				Columns:    []*schema.Column{MembershipsColumns[5]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "membership_workspace_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MembershipsColumns[5], MembershipsColumns[1]},
			},
			{
				Name:    "membership_user_id",
				Unique:  false,
				Columns: []*schema.Column{MembershipsColumns[1]},
			},
		},
	}
	// RunArchivesColumns holds the columns for the "run_archives" table.
	RunArchivesColumns = []*schema.Column{
		{Name: "archive_id", Type: field.TypeString, Unique: true},
		{Name: "archive_path", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunArchivesTable holds the schema information for the "run_archives" table.
	RunArchivesTable = &schema.Table{
		Name:       "run_archives",
		Columns:    RunArchivesColumns,
		PrimaryKey: []*schema.Column{RunArchivesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_archives_agent_runs_archives",
				Columns:    []*schema.Column{RunArchivesColumns[5]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runarchive_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunArchivesColumns[5]},
			},
			{
				Name:    "runarchive_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunArchivesColumns[4]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_agent_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[6]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_seq",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[6], RunEventsColumns[1]},
			},
			{
				Name:    "runevent_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[2], RunEventsColumns[5]},
			},
		},
	}
	// SubrunLinksColumns holds the columns for the "subrun_links" table.
	SubrunLinksColumns = []*schema.Column{
		{Name: "link_id", Type: field.TypeString, Unique: true},
		{Name: "child_run_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "join_policy", Type: field.TypeEnum, Enums: []string{"wait_all", "wait_any", "quorum", "timeout"}, Default: "wait_all"},
		{Name: "quorum", Type: field.TypeInt, Nullable: true},
		{Name: "timeout_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "failure_policy", Type: field.TypeEnum, Enums: []string{"fail_fast", "cancel_siblings", "continue"}, Default: "fail_fast"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_run_id", Type: field.TypeString},
	}
	// SubrunLinksTable holds the schema information for the "subrun_links" table.
	SubrunLinksTable = &schema.Table{
		Name:       "subrun_links",
		Columns:    SubrunLinksColumns,
		PrimaryKey: []*schema.Column{SubrunLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subrun_links_agent_runs_child_links",
				Columns:    []*schema.Column{SubrunLinksColumns[9]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subrunlink_group_id",
				Unique:  false,
				Columns: []*schema.Column{SubrunLinksColumns[2]},
			},
			{
				Name:    "subrunlink_parent_run_id",
				Unique:  false,
				Columns: []*schema.Column{SubrunLinksColumns[9]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "tool_call_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "args", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "requires_approval", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "running", "succeeded", "failed", "canceled"}, Default: "pending"},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "stdout", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "stderr", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Unique: true},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_calls_agent_runs_tool_calls",
				Columns:    []*schema.Column{ToolCallsColumns[15]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tool_calls_agent_steps_tool_call",
				Columns:    []*schema.Column{ToolCallsColumns[16]},
				RefColumns: []*schema.Column{AgentStepsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[15], ToolCallsColumns[5]},
			},
			{
				Name:    "toolcall_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[5], ToolCallsColumns[14]},
			},
		},
	}
	// ToolDefinitionsColumns holds the columns for the "tool_definitions" table.
	ToolDefinitionsColumns = []*schema.Column{
		{Name: "tool_definition_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "args_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "default_risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "default_requires_approval", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// ToolDefinitionsTable holds the schema information for the "tool_definitions" table.
	ToolDefinitionsTable = &schema.Table{
		Name:       "tool_definitions",
		Columns:    ToolDefinitionsColumns,
		PrimaryKey: []*schema.Column{ToolDefinitionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_definitions_workspaces_tool_definitions",
				Columns:    []*schema.Column{ToolDefinitionsColumns[7]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tooldefinition_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{ToolDefinitionsColumns[7], ToolDefinitionsColumns[1]},
			},
		},
	}
	// UserActionLogsColumns holds the columns for the "user_action_logs" table.
	UserActionLogsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "target_type", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserActionLogsTable holds the schema information for the "user_action_logs" table.
	UserActionLogsTable = &schema.Table{
		Name:       "user_action_logs",
		Columns:    UserActionLogsColumns,
		PrimaryKey: []*schema.Column{UserActionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "useractionlog_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UserActionLogsColumns[1], UserActionLogsColumns[7]},
			},
			{
				Name:    "useractionlog_target_type_target_id",
				Unique:  false,
				Columns: []*schema.Column{UserActionLogsColumns[4], UserActionLogsColumns[5]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentRunsTable,
		AgentStepsTable,
		MembershipsTable,
		RunArchivesTable,
		RunEventsTable,
		SubrunLinksTable,
		ToolCallsTable,
		ToolDefinitionsTable,
		UserActionLogsTable,
		WorkspacesTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = WorkspacesTable
	AgentRunsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentRunsTable.ForeignKeys[1].RefTable = WorkspacesTable
	AgentStepsTable.ForeignKeys[0].RefTable = AgentRunsTable
	MembershipsTable.ForeignKeys[0].RefTable = WorkspacesTable
	RunArchivesTable.ForeignKeys[0].RefTable = AgentRunsTable
	RunEventsTable.ForeignKeys[0].RefTable = AgentRunsTable
	SubrunLinksTable.ForeignKeys[0].RefTable = AgentRunsTable
	ToolCallsTable.ForeignKeys[0].RefTable = AgentRunsTable
	ToolCallsTable.ForeignKeys[1].RefTable = AgentStepsTable
	ToolDefinitionsTable.ForeignKeys[0].RefTable = WorkspacesTable
}
