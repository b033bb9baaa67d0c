package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
)

// SubrunService is the subrun controller: spawning children, join and
// failure policy evaluation, and child cancellation.
type SubrunService struct {
	client     *ent.Client
	quota      *quota.Manager
	machine    *runstate.Machine
	sched      Scheduler
	maxPending int
}

// NewSubrunService creates a new SubrunService. maxPending caps the
// number of non-terminal children one parent may have.
func NewSubrunService(client *ent.Client, q *quota.Manager, machine *runstate.Machine, sched Scheduler, maxPending int) *SubrunService {
	return &SubrunService{client: client, quota: q, machine: machine, sched: sched, maxPending: maxPending}
}

// Spawn creates a PENDING child of parent, links it into a join group
// and parks the parent in WAITING_FOR_SUBRUN. The child's first tick
// is enqueued on commit. userID may be empty for agent-initiated
// spawns; user spawns are role-checked and audited.
func (s *SubrunService) Spawn(ctx context.Context, parentRunID string, req models.SpawnSubrunRequest, userID string) (*ent.AgentRun, *ent.SubrunLink, error) {
	parentRef, err := s.client.AgentRun.Get(ctx, parentRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("get parent run: %w", err)
	}
	if userID != "" {
		if _, err := RequireOperator(ctx, s.client, parentRef.WorkspaceID, userID, "spawn subrun"); err != nil {
			return nil, nil, err
		}
	}

	joinPolicy, failurePolicy, err := parsePolicies(req)
	if err != nil {
		return nil, nil, err
	}

	childID := uuid.New().String()
	slotsHeld := false

	var (
		child *ent.AgentRun
		link  *ent.SubrunLink
	)
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		parent, err := journal.LockRun(ctx, tx, parentRunID)
		if err != nil {
			return err
		}

		pending, err := tx.AgentRun.Query().
			Where(
				agentrun.ParentRunIDEQ(parent.ID),
				agentrun.StatusNotIn(terminalStatuses...),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count pending children: %w", err)
		}
		if pending >= s.maxPending {
			return NewValidationError("parent_run_id",
				fmt.Sprintf("parent already has %d non-terminal children (max %d)", pending, s.maxPending))
		}

		if err := s.quota.ConsumeRate(ctx, quota.SpawnSubrun, parent.WorkspaceID); err != nil {
			return err
		}

		switch parent.Status {
		case agentrun.StatusPending, agentrun.StatusRunning, agentrun.StatusWaitingForSubrun:
		default:
			return NewValidationError("parent_run_id",
				fmt.Sprintf("cannot spawn from a parent in status %s", parent.Status))
		}

		if err := s.quota.AcquireRunSlots(ctx, parent.WorkspaceID, childID, false); err != nil {
			return err
		}
		slotsHeld = true

		childBuilder := tx.AgentRun.Create().
			SetID(childID).
			SetWorkspaceID(parent.WorkspaceID).
			SetAgentID(parent.AgentID).
			SetParentRunID(parent.ID).
			SetCorrelationID(uuid.New().String()).
			SetStatus(agentrun.StatusPending).
			SetChannel(parent.Channel).
			SetInputText(req.InputText).
			SetMaxSteps(parent.MaxSteps).
			SetMaxToolCalls(parent.MaxToolCalls)
		if parent.StartedBy != nil {
			childBuilder.SetStartedBy(*parent.StartedBy)
		}
		child, err = childBuilder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create child run: %w", err)
		}

		groupID := req.GroupID
		if groupID == "" {
			groupID = uuid.New().String()
		}
		linkBuilder := tx.SubrunLink.Create().
			SetID(uuid.New().String()).
			SetParentRunID(parent.ID).
			SetChildRunID(child.ID).
			SetGroupID(groupID).
			SetJoinPolicy(joinPolicy).
			SetFailurePolicy(failurePolicy)
		if req.Quorum != nil {
			linkBuilder.SetQuorum(*req.Quorum)
		}
		if req.TimeoutSeconds != nil {
			linkBuilder.SetTimeoutSeconds(*req.TimeoutSeconds)
		}
		if req.Metadata != nil {
			linkBuilder.SetMetadata(req.Metadata)
		}
		link, err = linkBuilder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create subrun link: %w", err)
		}

		stepPayload := map[string]any{
			"child_run_id":    child.ID,
			"subrun_group_id": groupID,
			"join_policy":     string(joinPolicy),
			"failure_policy":  string(failurePolicy),
		}
		if req.Quorum != nil {
			stepPayload["quorum"] = *req.Quorum
		}
		if req.TimeoutSeconds != nil {
			stepPayload["timeout_seconds"] = *req.TimeoutSeconds
		}
		if req.Metadata != nil {
			stepPayload["metadata"] = req.Metadata
		}
		_, parent, err = journal.AppendStep(ctx, tx, parent, agentstep.KindSubrunSpawn, stepPayload)
		if err != nil {
			return err
		}

		if _, err := journal.AppendEvent(ctx, tx, parent, events.EventSubrunSpawned, map[string]any{
			"child_run_id":    child.ID,
			"subrun_group_id": groupID,
			"join_policy":     string(joinPolicy),
		}); err != nil {
			return err
		}

		if parent.Status != agentrun.StatusWaitingForSubrun {
			if parent, err = s.machine.Transition(ctx, tx, hooks, parent, agentrun.StatusWaitingForSubrun); err != nil {
				return err
			}
		}

		if userID != "" {
			if err := recordAction(ctx, tx, parent.WorkspaceID, userID, "subrun_spawned", "agent_run", child.ID, map[string]any{
				"parent_run_id": parent.ID,
				"group_id":      groupID,
			}); err != nil {
				return err
			}
		}

		hooks.OnCommit(func() { s.sched.Enqueue(childID, 0) })
		return nil
	})
	if err != nil {
		if slotsHeld {
			s.quota.ReleaseRunSlots(context.WithoutCancel(ctx), parentRef.WorkspaceID, childID, false)
		}
		return nil, nil, err
	}
	return child, link, nil
}

func parsePolicies(req models.SpawnSubrunRequest) (subrunlink.JoinPolicy, subrunlink.FailurePolicy, error) {
	joinPolicy := subrunlink.JoinPolicyWaitAll
	if req.JoinPolicy != "" {
		joinPolicy = subrunlink.JoinPolicy(req.JoinPolicy)
		if err := subrunlink.JoinPolicyValidator(joinPolicy); err != nil {
			return "", "", NewValidationError("join_policy", "must be one of wait_all, wait_any, quorum, timeout")
		}
	}
	failurePolicy := subrunlink.FailurePolicyFailFast
	if req.FailurePolicy != "" {
		failurePolicy = subrunlink.FailurePolicy(req.FailurePolicy)
		if err := subrunlink.FailurePolicyValidator(failurePolicy); err != nil {
			return "", "", NewValidationError("failure_policy", "must be one of fail_fast, cancel_siblings, continue")
		}
	}
	if joinPolicy == subrunlink.JoinPolicyQuorum && (req.Quorum == nil || *req.Quorum < 1) {
		return "", "", NewValidationError("quorum", "required and must be >= 1 for join_policy=quorum")
	}
	if joinPolicy == subrunlink.JoinPolicyTimeout && (req.TimeoutSeconds == nil || *req.TimeoutSeconds < 1) {
		return "", "", NewValidationError("timeout_seconds", "required and must be >= 1 for join_policy=timeout")
	}
	return joinPolicy, failurePolicy, nil
}

// CompleteSubrun evaluates the parent's failure and join policies
// after child childRunID reached a terminal status. No-op when the
// child is not a subrun, is still live, or the parent is already
// terminal.
func (s *SubrunService) CompleteSubrun(ctx context.Context, childRunID string) error {
	return journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		child, err := journal.LockRun(ctx, tx, childRunID)
		if err != nil {
			return err
		}
		if !runstate.IsTerminal(child.Status) {
			return nil
		}

		link, err := tx.SubrunLink.Query().
			Where(subrunlink.ChildRunIDEQ(child.ID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil // not a subrun
			}
			return fmt.Errorf("lock subrun link: %w", err)
		}

		groupLinks, err := tx.SubrunLink.Query().
			Where(subrunlink.GroupIDEQ(link.GroupID)).
			ForUpdate().
			All(ctx)
		if err != nil {
			return fmt.Errorf("lock subrun group %s: %w", link.GroupID, err)
		}

		parent, err := journal.LockRun(ctx, tx, link.ParentRunID)
		if err != nil {
			return err
		}
		if runstate.IsTerminal(parent.Status) {
			return nil
		}

		childIDs := make([]string, 0, len(groupLinks))
		oldestLink := link.CreatedAt
		for _, l := range groupLinks {
			childIDs = append(childIDs, l.ChildRunID)
			if l.CreatedAt.Before(oldestLink) {
				oldestLink = l.CreatedAt
			}
		}
		groupRuns, err := tx.AgentRun.Query().
			Where(agentrun.IDIn(childIDs...)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load group children: %w", err)
		}

		active := 0
		completed := 0
		for _, r := range groupRuns {
			if runstate.IsTerminal(r.Status) {
				completed++
			} else {
				active++
			}
		}

		timeoutExpired := false
		if link.TimeoutSeconds != nil {
			deadline := oldestLink.Add(time.Duration(*link.TimeoutSeconds) * time.Second)
			timeoutExpired = !time.Now().Before(deadline)
		}

		eventType := events.EventSubrunCompleted
		if child.Status == agentrun.StatusCanceled {
			eventType = events.EventSubrunCancelled
		}
		eventPayload := map[string]any{
			"child_run_id":    child.ID,
			"status":          string(child.Status),
			"subrun_group_id": link.GroupID,
		}
		if link.Metadata != nil {
			eventPayload["metadata"] = link.Metadata
		}
		if _, err := journal.AppendEvent(ctx, tx, parent, eventType, eventPayload,
			journal.WithCorrelationID(child.CorrelationID)); err != nil {
			return err
		}

		if child.Status == agentrun.StatusFailed || child.Status == agentrun.StatusCanceled {
			switch link.FailurePolicy {
			case subrunlink.FailurePolicyFailFast:
				_, err = s.machine.Transition(ctx, tx, hooks, parent, agentrun.StatusFailed)
				return err
			case subrunlink.FailurePolicyCancelSiblings:
				for _, r := range groupRuns {
					if r.ID == child.ID || runstate.IsTerminal(r.Status) {
						continue
					}
					sibling, err := journal.LockRun(ctx, tx, r.ID)
					if err != nil {
						return err
					}
					if err := cancelSubrunLocked(ctx, tx, hooks, s.machine, s.sched, parent, sibling, "sibling failed"); err != nil {
						return err
					}
				}
				_, err = s.machine.Transition(ctx, tx, hooks, parent, agentrun.StatusFailed)
				return err
			case subrunlink.FailurePolicyContinue:
				// fall through to join evaluation
			}
		}

		resume := false
		switch link.JoinPolicy {
		case subrunlink.JoinPolicyWaitAny:
			resume = true
		case subrunlink.JoinPolicyWaitAll:
			resume = active == 0
		case subrunlink.JoinPolicyQuorum:
			q := 1
			if link.Quorum != nil && *link.Quorum > 1 {
				q = *link.Quorum
			}
			resume = completed >= q
		case subrunlink.JoinPolicyTimeout:
			resume = active == 0 || timeoutExpired
		}
		if !resume {
			return nil
		}

		if parent.Status == agentrun.StatusWaitingForSubrun {
			if _, err := s.machine.Transition(ctx, tx, hooks, parent, agentrun.StatusRunning); err != nil {
				return err
			}
			parentID := parent.ID
			hooks.OnCommit(func() { s.sched.Enqueue(parentID, 0) })
		}
		return nil
	})
}

// CancelSubrun cancels a child run. When notifyParent is set, the
// parent's failure/join policy is evaluated after commit.
func (s *SubrunService) CancelSubrun(ctx context.Context, childRunID, reason string, notifyParent bool) error {
	err := journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		child, err := journal.LockRun(ctx, tx, childRunID)
		if err != nil {
			return err
		}
		if runstate.IsTerminal(child.Status) {
			notifyParent = false
			return nil
		}

		if child.ParentRunID == nil {
			_, err = cancelRunLocked(ctx, tx, hooks, s.machine, s.sched, child, reason)
			return err
		}

		parent, err := journal.LockRun(ctx, tx, *child.ParentRunID)
		if err != nil {
			return err
		}
		return cancelSubrunLocked(ctx, tx, hooks, s.machine, s.sched, parent, child, reason)
	})
	if err != nil {
		return err
	}
	if notifyParent {
		return s.CompleteSubrun(ctx, childRunID)
	}
	return nil
}
