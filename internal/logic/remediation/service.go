package remediation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/skillcoder/kguard/internal/infra/metrics"
	"github.com/skillcoder/kguard/internal/logic/cluster"
	"github.com/skillcoder/kguard/internal/logic/ownership"
)

const (
	// DefaultEventsLimit is how many events RecentEventsQuery returns when not configured.
	DefaultEventsLimit = 15

	eventsPlaceholder = "waiting for Kubernetes events... (%s)"
)

// Service executes operator-triggered remediation against the cluster.
// Every command issues at most one mutating call and never retries.
type Service struct {
	logger      *slog.Logger
	repo        cluster.Repository
	auditor     Auditor
	eventsLimit int
}

// New creates a new remediation service. A nil auditor disables the audit trail.
func New(
	logger *slog.Logger,
	repo cluster.Repository,
	auditor Auditor,
	eventsLimit int,
) *Service {
	if eventsLimit <= 0 {
		eventsLimit = DefaultEventsLimit
	}

	return &Service{
		logger:      logger,
		repo:        repo,
		auditor:     auditor,
		eventsLimit: eventsLimit,
	}
}

// ForceRestartCommand deletes a pod with a zero grace period so its controller recreates it.
func (s *Service) ForceRestartCommand(ctx context.Context, namespace, pod string) (Result, error) {
	sess := newSession(ctx, s.logger, ActionRestart, namespace, pod)

	if namespace == "" || pod == "" {
		return s.fail(ctx, sess, namespace, pod, "", "", fmt.Errorf(
			"%w: namespace and pod are required", cluster.ErrValidation,
		))
	}

	sess.transition(ctx, StateMutating)

	if err := s.repo.DeletePodCommand(ctx, namespace, pod, 0); err != nil {
		return s.fail(ctx, sess, namespace, pod, "", "", fmt.Errorf(
			"delete pod %s/%s: %w", namespace, pod, cluster.DomainError(err),
		))
	}

	return s.succeed(ctx, sess, namespace, pod, "", "", Result{
		Message: fmt.Sprintf("pod %s deleted, its controller will recreate it", pod),
	})
}

// ScaleDownCommand sets the replica count of the Deployment that owns pod.
// Nothing is mutated unless the owner resolves to a single Deployment.
func (s *Service) ScaleDownCommand(ctx context.Context, namespace, pod string, replicas int32) (Result, error) {
	sess := newSession(ctx, s.logger, ActionScaleDown, namespace, pod)
	value := strconv.Itoa(int(replicas))

	switch {
	case namespace == "" || pod == "":
		return s.fail(ctx, sess, namespace, pod, "", value, fmt.Errorf(
			"%w: namespace and pod are required", cluster.ErrValidation,
		))
	case replicas < 0:
		return s.fail(ctx, sess, namespace, pod, "", value, fmt.Errorf(
			"%w: replicas must not be negative, got %d", cluster.ErrValidation, replicas,
		))
	}

	sess.transition(ctx, StateResolvingOwner)

	instance, err := s.repo.GetPodQuery(ctx, namespace, pod)
	if err != nil {
		return s.fail(ctx, sess, namespace, pod, "", value, fmt.Errorf(
			"get pod %s/%s: %w", namespace, pod, cluster.DomainError(err),
		))
	}

	ref, err := ownership.ResolveWorkloadFor(*instance)
	if err != nil {
		return s.fail(ctx, sess, namespace, pod, "", value, err)
	}

	sess.transition(ctx, StateMutating)

	if err := s.repo.PatchDeploymentScaleCommand(ctx, namespace, ref.Name, replicas); err != nil {
		return s.fail(ctx, sess, namespace, pod, ref.Name, value, fmt.Errorf(
			"scale deployment %s/%s: %w", namespace, ref.Name, cluster.DomainError(err),
		))
	}

	return s.succeed(ctx, sess, namespace, pod, ref.Name, value, Result{
		Message:  fmt.Sprintf("scaling %s to %d replica(s)", ref.Name, replicas),
		Workload: ref.Name,
		Replicas: &replicas,
	})
}

// PatchImageCommand replaces the image of the first container of a Deployment.
func (s *Service) PatchImageCommand(ctx context.Context, namespace, workload, image string) (Result, error) {
	sess := newSession(ctx, s.logger, ActionPatchImage, namespace, workload)

	if namespace == "" || workload == "" || image == "" {
		return s.fail(ctx, sess, namespace, workload, workload, image, fmt.Errorf(
			"%w: namespace, deployment and image are required", cluster.ErrValidation,
		))
	}

	sess.transition(ctx, StateResolvingOwner)

	deployment, err := s.repo.GetDeploymentQuery(ctx, namespace, workload)
	if err != nil {
		return s.fail(ctx, sess, namespace, workload, workload, image, fmt.Errorf(
			"get deployment %s/%s: %w", namespace, workload, cluster.DomainError(err),
		))
	}

	if len(deployment.Containers) == 0 {
		return s.fail(ctx, sess, namespace, workload, workload, image, fmt.Errorf(
			"%w: deployment %s/%s has no containers", cluster.ErrValidation, namespace, workload,
		))
	}

	patch, err := imagePatch(deployment.Containers[0].Name, image)
	if err != nil {
		return s.fail(ctx, sess, namespace, workload, workload, image, err)
	}

	sess.transition(ctx, StateMutating)

	if err := s.repo.PatchDeploymentCommand(ctx, namespace, workload, patch); err != nil {
		return s.fail(ctx, sess, namespace, workload, workload, image, fmt.Errorf(
			"patch deployment %s/%s: %w", namespace, workload, cluster.DomainError(err),
		))
	}

	return s.succeed(ctx, sess, namespace, workload, workload, image, Result{
		Message:  fmt.Sprintf("image update to %s started for %s", image, workload),
		Workload: workload,
		Image:    image,
	})
}

// imagePatch builds a strategic merge patch that touches only one container's image.
func imagePatch(container, image string) ([]byte, error) {
	patch := map[string]any{
		"spec": map[string]any{
			"template": map[string]any{
				"spec": map[string]any{
					"containers": []map[string]string{
						{"name": container, "image": image},
					},
				},
			},
		},
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal image patch: %w", err)
	}

	return data, nil
}

// RecentEventsQuery returns the latest events whose object name contains
// workload, one "[time] message" per line. It never fails; errors are
// rendered as a waiting placeholder.
func (s *Service) RecentEventsQuery(ctx context.Context, namespace, workload string) string {
	// an empty name would match every event in the namespace
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(workload) == "" {
		return fmt.Sprintf(eventsPlaceholder, "namespace and deployment are required")
	}

	events, err := s.repo.ListEventsQuery(ctx, namespace)
	if err != nil {
		s.logger.WarnContext(ctx, "list events failed",
			"namespace", namespace,
			"workload", workload,
			"reason", err,
		)

		return fmt.Sprintf(eventsPlaceholder, err.Error())
	}

	lines := make([]string, 0, len(events))

	for _, event := range events {
		if !strings.Contains(event.ObjectName, workload) {
			continue
		}

		lines = append(lines, fmt.Sprintf("[%s] %s", event.Time.Format(time.RFC3339), event.Message))
	}

	if len(lines) > s.eventsLimit {
		lines = lines[len(lines)-s.eventsLimit:]
	}

	return strings.Join(lines, "\n")
}

func (s *Service) succeed(
	ctx context.Context,
	sess *session,
	namespace, target, workload, value string,
	result Result,
) (Result, error) {
	sess.transition(ctx, StateSucceeded)
	sess.logger.InfoContext(ctx, "remediation succeeded", "message", result.Message)

	result.Status = ResultSuccess

	s.finish(ctx, sess, namespace, target, workload, value, ResultSuccess, result.Message)

	return result, nil
}

func (s *Service) fail(
	ctx context.Context,
	sess *session,
	namespace, target, workload, value string,
	err error,
) (Result, error) {
	sess.transition(ctx, StateFailed)
	sess.logger.ErrorContext(ctx, "remediation failed", "reason", err)

	s.finish(ctx, sess, namespace, target, workload, value, ResultError, err.Error())

	return Result{Status: ResultError, Message: err.Error()}, err
}

// finish counts the outcome and writes it to the audit trail.
// An audit failure is logged and never changes the outcome.
func (s *Service) finish(
	ctx context.Context,
	sess *session,
	namespace, target, workload, value, status, message string,
) {
	metrics.RecordRemediation(string(sess.action), status)

	if s.auditor == nil {
		return
	}

	entry := AuditEntry{
		ID:        sess.id,
		Time:      time.Now().UTC(),
		Principal: PrincipalFrom(ctx),
		Action:    sess.action,
		Namespace: namespace,
		Target:    target,
		Workload:  workload,
		Value:     value,
		Status:    status,
		Message:   message,
	}

	if err := s.auditor.Record(context.WithoutCancel(ctx), entry); err != nil {
		sess.logger.WarnContext(ctx, "audit record failed", "reason", err)
	}
}
