package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"
	"github.com/jsamuelsen11/project-service/mocks"
)

func reviewer() domain.Principal {
	return domain.Principal{
		UserID:      uuid.New(),
		Permissions: []string{PermissionCompleteStage, PermissionConfirmStage},
	}
}

func TestStageService_ChangeStageStatus_DrivesAggregate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	p, sp := f.seedProject(t, "Design", "Build", "Ship")
	svc := f.stages(nil, nil)
	ctx := context.Background()
	who := reviewer()

	ids := stageIDs(sp)
	steps := []struct {
		stage           uuid.UUID
		to              project.StageStatus
		wantSubStatus   project.Status
		wantSubProgress float64
		wantStatus      project.Status
		wantProgress    float64
	}{
		{ids[0], project.StageInProgress, project.StatusInProgress, 0, project.StatusInProgress, 0},
		{ids[0], project.StageCompleted, project.StatusInProgress, 1.0 / 3.0, project.StatusInProgress, 0},
		{ids[1], project.StageConfirmed, project.StatusInProgress, 1.0 / 3.0, project.StatusInProgress, 0},
		{ids[1], project.StageCompleted, project.StatusInProgress, 2.0 / 3.0, project.StatusInProgress, 0},
		{ids[2], project.StageCompleted, project.StatusCompleted, 1, project.StatusCompleted, 1},
	}

	const eps = 1e-9
	for _, step := range steps {
		cmd := ports.ChangeStageStatusCmd{StageID: step.stage, Status: step.to, Principal: who}
		if step.to == project.StageConfirmed {
			cmd.Message = ptr("reviewed")
		}
		if _, err := svc.ChangeStageStatus(ctx, cmd); err != nil {
			t.Fatalf("ChangeStageStatus(%s) error = %v", step.to, err)
		}
		stored, err := f.store.Projects().Get(ctx, p.ID())
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		sub := stored.Subproject(sp.ID())
		if sub.Status() != step.wantSubStatus {
			t.Errorf("after %s: subproject status = %q, want %q", step.to, sub.Status(), step.wantSubStatus)
		}
		if diff := sub.Progress() - step.wantSubProgress; diff > eps || diff < -eps {
			t.Errorf("after %s: subproject progress = %v, want %v", step.to, sub.Progress(), step.wantSubProgress)
		}
		if stored.Status() != step.wantStatus {
			t.Errorf("after %s: project status = %q, want %q", step.to, stored.Status(), step.wantStatus)
		}
		if diff := stored.Progress() - step.wantProgress; diff > eps || diff < -eps {
			t.Errorf("after %s: project progress = %v, want %v", step.to, stored.Progress(), step.wantProgress)
		}
	}
}

func TestStageService_ChangeStageStatus_Permissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		to          project.StageStatus
		permissions []string
		message     *string
		wantErr     error
	}{
		{name: "in progress needs nothing", to: project.StageInProgress},
		{name: "complete without permission", to: project.StageCompleted, wantErr: domain.ErrForbidden},
		{name: "complete with permission", to: project.StageCompleted, permissions: []string{PermissionCompleteStage}},
		{name: "confirm without permission", to: project.StageConfirmed, message: ptr("ok"), permissions: []string{PermissionCompleteStage}, wantErr: domain.ErrForbidden},
		{name: "confirm without message", to: project.StageConfirmed, permissions: []string{PermissionConfirmStage}, wantErr: domain.ErrValidation},
		{name: "confirm with message", to: project.StageConfirmed, message: ptr("looks good"), permissions: []string{PermissionConfirmStage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()
			_, sp := f.seedProject(t, "Design")
			svc := f.stages(nil, nil)
			ctx := context.Background()
			stageID := stageIDs(sp)[0]

			who := domain.Principal{UserID: uuid.New(), Permissions: tt.permissions}
			_, err := svc.ChangeStageStatus(ctx, ports.ChangeStageStatusCmd{
				StageID: stageID, Status: tt.to, Principal: who, Message: tt.message,
			})

			history, herr := f.store.History().ListByStage(ctx, stageID, ports.PageRequest{Limit: 10})
			if herr != nil {
				t.Fatalf("ListByStage() error = %v", herr)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ChangeStageStatus() error = %v, want %v", err, tt.wantErr)
				}
				if history.Total != 0 {
					t.Errorf("history entries = %d, want 0 after a rejected change", history.Total)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChangeStageStatus() error = %v", err)
			}
			if history.Total != 1 || history.Items[0].ChangedBy != who.UserID {
				t.Errorf("history = %+v, want one entry by %s", history.Items, who.UserID)
			}
		})
	}
}

func TestStageService_ChangeStageStatus_PermissionError(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, sp := f.seedProject(t, "Design")
	who := domain.Principal{UserID: uuid.New()}

	_, err := f.stages(nil, nil).ChangeStageStatus(context.Background(), ports.ChangeStageStatusCmd{
		StageID: stageIDs(sp)[0], Status: project.StageCompleted, Principal: who,
	})

	var perr *PermissionError
	if !errors.As(err, &perr) {
		t.Fatalf("ChangeStageStatus() error = %v, want *PermissionError", err)
	}
	if perr.Permission != PermissionCompleteStage || perr.UserID != who.UserID {
		t.Errorf("PermissionError = %+v, want permission %q for %s", perr, PermissionCompleteStage, who.UserID)
	}
}

func TestStageService_ChangeStageStatus_PublishesAndRecords(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, sp := f.seedProject(t, "Design")
	stageID := stageIDs(sp)[0]
	who := reviewer()

	events := mocks.NewMockEventPublisher(t)
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
		changed, ok := e.(ports.StageStatusChanged)
		return ok && changed.StageID == stageID && changed.ToStatus == "confirmed" && changed.ChangedBy == who.UserID
	})).Return(nil).Once()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	svc := f.stages(nil, events, WithMetrics(metrics))

	st, err := svc.ChangeStageStatus(context.Background(), ports.ChangeStageStatusCmd{
		StageID: stageID, Status: project.StageConfirmed, Principal: who, Message: ptr("signed off"),
	})
	if err != nil {
		t.Fatalf("ChangeStageStatus() error = %v", err)
	}

	msgs := st.Messages()
	if len(msgs) != 1 || msgs[0].AuthorID != who.UserID || msgs[0].Text != "signed off" {
		t.Errorf("messages = %+v, want one note by the principal", msgs)
	}

	history, err := svc.ListStageHistory(context.Background(), stageID, ports.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("ListStageHistory() error = %v", err)
	}
	if history.Total != 1 || history.Items[0].ToStatus != project.StageConfirmed {
		t.Errorf("ListStageHistory() = %+v, want one confirmed entry", history.Items)
	}
}

func TestStageService_ChangeStageStatus_RejectSameStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "rejected by default", wantErr: domain.ErrConflict},
		{name: "rejected when enabled", opts: []Option{WithRejectSameStatus(true)}, wantErr: domain.ErrConflict},
		{name: "accepted when disabled", opts: []Option{WithRejectSameStatus(false)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()
			_, sp := f.seedProject(t, "Design")
			svc := f.stages(nil, nil, tt.opts...)
			cmd := ports.ChangeStageStatusCmd{StageID: stageIDs(sp)[0], Status: project.StageInProgress, Principal: reviewer()}

			if _, err := svc.ChangeStageStatus(context.Background(), cmd); err != nil {
				t.Fatalf("first ChangeStageStatus() error = %v", err)
			}
			_, err := svc.ChangeStageStatus(context.Background(), cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("second ChangeStageStatus() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStageService_ChangeStageStatus_UnknownStage(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.stages(nil, nil).ChangeStageStatus(context.Background(), ports.ChangeStageStatusCmd{
		StageID: uuid.New(), Status: project.StageInProgress, Principal: reviewer(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ChangeStageStatus() error = %v, want ErrNotFound", err)
	}
}

func TestStageService_GetStage_ResolvesAuthors(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, sp := f.seedProject(t, "Design")
	stageID := stageIDs(sp)[0]
	ada, bob := uuid.New(), uuid.New()

	seed := f.stages(nil, nil)
	for _, author := range []uuid.UUID{ada, bob, ada} {
		if _, err := seed.AddMessage(context.Background(), ports.AddMessageCmd{StageID: stageID, AuthorID: author, Text: "note"}); err != nil {
			t.Fatalf("AddMessage() error = %v", err)
		}
	}

	users := mocks.NewMockUserDirectory(t)
	users.EXPECT().GetUserInfo(mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2
	})).Return([]ports.UserInfo{{ID: ada, Username: "ada"}, {ID: bob, Username: "bob"}}, nil).Once()

	view, err := f.stages(users, nil).GetStage(context.Background(), stageID)
	if err != nil {
		t.Fatalf("GetStage() error = %v", err)
	}

	want := []string{"ada", "bob", "ada"}
	if len(view.Messages) != len(want) {
		t.Fatalf("len(Messages) = %d, want %d", len(view.Messages), len(want))
	}
	for i, m := range view.Messages {
		if m.AuthorUsername != want[i] {
			t.Errorf("Messages[%d].AuthorUsername = %q, want %q", i, m.AuthorUsername, want[i])
		}
	}
	if view.SubprojectID != sp.ID() {
		t.Errorf("SubprojectID = %s, want %s", view.SubprojectID, sp.ID())
	}
}

func TestStageService_GetStage_DirectoryFailureLeavesUsernamesEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, sp := f.seedProject(t, "Design")
	stageID := stageIDs(sp)[0]

	if _, err := f.stages(nil, nil).AddMessage(context.Background(), ports.AddMessageCmd{StageID: stageID, AuthorID: uuid.New(), Text: "hi"}); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}

	users := mocks.NewMockUserDirectory(t)
	users.EXPECT().GetUserInfo(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	view, err := f.stages(users, nil).GetStage(context.Background(), stageID)
	if err != nil {
		t.Fatalf("GetStage() error = %v, want nil", err)
	}
	if len(view.Messages) != 1 || view.Messages[0].AuthorUsername != "" {
		t.Errorf("Messages = %+v, want one message with an empty username", view.Messages)
	}
}

func TestStageService_GetStage_NoMessagesSkipsDirectory(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, sp := f.seedProject(t, "Design")
	users := mocks.NewMockUserDirectory(t)

	view, err := f.stages(users, nil).GetStage(context.Background(), stageIDs(sp)[0])
	if err != nil {
		t.Fatalf("GetStage() error = %v", err)
	}
	if len(view.Messages) != 0 {
		t.Errorf("len(Messages) = %d, want 0", len(view.Messages))
	}
}

func TestStageService_AddMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		author  uuid.UUID
		text    string
		wantErr error
	}{
		{name: "valid", author: uuid.New(), text: "hello"},
		{name: "missing author", text: "hello", wantErr: domain.ErrValidation},
		{name: "blank text", author: uuid.New(), text: "   ", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()
			_, sp := f.seedProject(t, "Design")
			svc := f.stages(nil, nil)
			stageID := stageIDs(sp)[0]

			msg, err := svc.AddMessage(context.Background(), ports.AddMessageCmd{StageID: stageID, AuthorID: tt.author, Text: tt.text})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddMessage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddMessage() error = %v", err)
			}

			view, err := svc.GetStage(context.Background(), stageID)
			if err != nil {
				t.Fatalf("GetStage() error = %v", err)
			}
			if view.Stage.Status() != project.StageCreated {
				t.Errorf("status = %q, want created", view.Stage.Status())
			}
			if len(view.Messages) != 1 || view.Messages[0].ID != msg.ID {
				t.Errorf("Messages = %+v, want the added message", view.Messages)
			}
		})
	}
}

func TestStageService_CreateUpdateDelete(t *testing.T) {
	t.Parallel()

	f := newFixture()
	p, sp := f.seedProject(t, "Design")
	svc := f.stages(nil, nil)
	ctx := context.Background()

	_, err := svc.CreateStage(ctx, ports.CreateStageCmd{SubprojectID: sp.ID(), Name: "Design"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("CreateStage(duplicate) error = %v, want ErrConflict", err)
	}

	st, err := svc.CreateStage(ctx, ports.CreateStageCmd{SubprojectID: sp.ID(), Name: "Build"})
	if err != nil {
		t.Fatalf("CreateStage() error = %v", err)
	}
	if _, err := svc.UpdateStage(ctx, ports.UpdateStageCmd{ID: st.ID(), Name: "Design"}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("UpdateStage(to duplicate) error = %v, want ErrConflict", err)
	}
	updated, err := svc.UpdateStage(ctx, ports.UpdateStageCmd{ID: st.ID(), Name: "Implement"})
	if err != nil {
		t.Fatalf("UpdateStage() error = %v", err)
	}
	if updated.Name() != "Implement" {
		t.Errorf("UpdateStage().Name() = %q, want Implement", updated.Name())
	}

	// Completing the first stage then deleting the open one leaves only
	// completed work, so the project completes.
	if _, err := svc.ChangeStageStatus(ctx, ports.ChangeStageStatusCmd{StageID: stageIDs(sp)[0], Status: project.StageCompleted, Principal: reviewer()}); err != nil {
		t.Fatalf("ChangeStageStatus() error = %v", err)
	}
	if err := svc.DeleteStage(ctx, st.ID()); err != nil {
		t.Fatalf("DeleteStage() error = %v", err)
	}
	stored, err := f.store.Projects().Get(ctx, p.ID())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Status() != project.StatusCompleted || stored.Progress() != 1 {
		t.Errorf("project = (%q, %v), want (completed, 1)", stored.Status(), stored.Progress())
	}

	page, err := svc.ListStages(ctx, ports.StageFilter{SubprojectID: sp.ID()}, ports.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("ListStages() error = %v", err)
	}
	if page.Total != 1 {
		t.Errorf("ListStages().Total = %d, want 1", page.Total)
	}
}

func TestStageService_GetStage_StageGoneFromProject(t *testing.T) {
	t.Parallel()

	f := newFixture()
	p, _ := f.seedProject(t, "Design")
	missing := uuid.New()

	repo := mocks.NewMockProjectRepository(t)
	repo.EXPECT().GetByStage(mock.Anything, missing).Return(p, nil)

	storage := f.storage()
	storage.Projects = repo
	svc := NewStageService(storage, nil, nil, discardLogger(), WithClock(f.clock))

	view, err := svc.GetStage(context.Background(), missing)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetStage() error = %v, want ErrNotFound", err)
	}
	if view != nil {
		t.Errorf("GetStage() = %+v, want nil", view)
	}
}

func TestStageService_ChangeStageStatus_HistoryAppend(t *testing.T) {
	t.Parallel()

	diskFull := errors.New("disk full")
	tests := []struct {
		name      string
		appendErr error
		wantEvent bool
	}{
		{name: "append failure aborts the change", appendErr: diskFull},
		{name: "append success publishes", wantEvent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			p, sp := f.seedProject(t, "Design")
			stageID := stageIDs(sp)[0]
			who := reviewer()

			repo := mocks.NewMockProjectRepository(t)
			repo.EXPECT().GetByStage(mock.Anything, stageID).Return(p, nil)
			repo.EXPECT().Save(mock.Anything, p).Return(nil)

			history := mocks.NewMockStageHistoryRepository(t)
			history.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e project.StageStatusHistory) bool {
				return e.StageID == stageID && e.ToStatus == project.StageInProgress && e.ChangedBy == who.UserID
			})).Return(tt.appendErr).Once()

			tx := mocks.NewMockTx(t)
			tx.EXPECT().Projects().Return(repo)
			tx.EXPECT().History().Return(history)

			uow := mocks.NewMockUnitOfWork(t)
			uow.EXPECT().Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.Tx) error) error {
					return fn(ctx, tx)
				})

			events := mocks.NewMockEventPublisher(t)
			if tt.wantEvent {
				events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
					changed, ok := e.(ports.StageStatusChanged)
					return ok && changed.StageID == stageID
				})).Return(nil).Once()
			}

			svc := NewStageService(Storage{UnitOfWork: uow, Projects: repo, History: history}, nil, events, discardLogger(), WithClock(f.clock))
			st, err := svc.ChangeStageStatus(context.Background(), ports.ChangeStageStatusCmd{
				StageID: stageID, Status: project.StageInProgress, Principal: who,
			})

			if tt.appendErr != nil {
				if !errors.Is(err, tt.appendErr) {
					t.Errorf("ChangeStageStatus() error = %v, want %v", err, tt.appendErr)
				}
				if st != nil {
					t.Errorf("ChangeStageStatus() = %+v, want nil", st)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChangeStageStatus() error = %v", err)
			}
			if st.Status() != project.StageInProgress {
				t.Errorf("Status() = %q, want %q", st.Status(), project.StageInProgress)
			}
		})
	}
}
