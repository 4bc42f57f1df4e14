package conference

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"asset-audit/core/apperror"
	"asset-audit/core/clock"
	"asset-audit/core/notify"
	"asset-audit/core/reconcile"
	"asset-audit/feature/users"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity resolves users for the lifecycle.
type Identity interface {
	FindByEmailOrBadge(ctx context.Context, identifier string) (*users.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]users.User, error)
}

// Dependencies are the collaborators of a Service.
type Dependencies struct {
	Repository Repository
	Registry   reconcile.Registry
	Identity   Identity
	Sink       notify.Sink
	Clock      clock.Clock

	// NotifyTimeout bounds report delivery on finalize.
	NotifyTimeout time.Duration

	Logger *zap.Logger
}

// Service is the conference lifecycle manager.
type Service struct {
	repo          Repository
	registry      reconcile.Registry
	identity      Identity
	sink          notify.Sink
	clock         clock.Clock
	notifyTimeout time.Duration
	logger        *zap.Logger
}

// NewService creates a new conference service.
func NewService(deps Dependencies) *Service {
	s := &Service{
		repo:          deps.Repository,
		registry:      deps.Registry,
		identity:      deps.Identity,
		sink:          deps.Sink,
		clock:         deps.Clock,
		notifyTimeout: deps.NotifyTimeout,
		logger:        deps.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.clock == nil {
		s.clock = clock.NewSystem()
	}
	if s.sink == nil {
		s.sink = notify.NewLogSink(s.logger)
	}
	if s.notifyTimeout <= 0 {
		s.notifyTimeout = 10 * time.Second
	}
	return s
}

// CreateInput holds the fields of a new conference.
type CreateInput struct {
	Title          string  `json:"title"`
	TargetLocation string  `json:"targetLocation"`
	Description    *string `json:"description,omitempty"`
	CreatorID      uint    `json:"creatorId"`
}

// SubmitItemInput holds a scanned item. DeclaredLocation defaults to the target location.
type SubmitItemInput struct {
	ConferenceID     string `json:"-"`
	Code             string `json:"code"`
	DeclaredLocation string `json:"declaredLocation,omitempty"`
	UserID           uint   `json:"userId"`
}

// Participant is a member of a conference. The owner has no ParticipationID.
type Participant struct {
	UserID          uint      `json:"userId"`
	Owner           bool      `json:"owner"`
	ParticipationID *uint     `json:"participationId,omitempty"`
	JoinedAt        time.Time `json:"joinedAt"`
}

// Detail is a conference with its participants and items.
type Detail struct {
	Conference   Conference    `json:"conference"`
	Participants []Participant `json:"participants"`
	Items        []Item        `json:"items"`
}

// StatusSummary holds the current counts of a conference.
type StatusSummary struct {
	ConferenceID   string `json:"conferenceId"`
	Status         Status `json:"status"`
	TargetLocation string `json:"targetLocation"`
	ItemCount      int    `json:"itemCount"`
	TotalExpected  int    `json:"totalExpected"`
	TotalVerified  int    `json:"totalVerified"`
	TotalMissing   int    `json:"totalMissing"`
	TotalForeign   int    `json:"totalForeign"`
}

// FinalizeResult is returned once the conference is FINALIZED, whether or not the report
// reached the sink.
type FinalizeResult struct {
	Conference    Conference `json:"conference"`
	Report        *Report    `json:"report,omitempty"`
	Recipients    []string   `json:"recipients"`
	Delivered     bool       `json:"delivered"`
	DeliveryError string     `json:"deliveryError,omitempty"`
}

// HistoryEntry is a conference seen from one user.
type HistoryEntry struct {
	Conference
	Owner bool `json:"owner"`
}

// Create opens a new conference in CREATED.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Conference, error) {
	title := strings.TrimSpace(in.Title)
	target := strings.TrimSpace(in.TargetLocation)
	switch {
	case title == "":
		return nil, apperror.Validation("title is required")
	case target == "":
		return nil, apperror.Validation("targetLocation is required")
	case in.CreatorID == 0:
		return nil, apperror.Validation("creatorId is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return nil, apperror.Validation("title exceeds %d characters", MaxTitleLength)
	case utf8.RuneCountInString(target) > MaxLocationLength:
		return nil, apperror.Validation("targetLocation exceeds %d characters", MaxLocationLength)
	}

	var description *string
	if in.Description != nil {
		if d := strings.TrimSpace(*in.Description); d != "" {
			description = &d
		}
	}

	conf := &Conference{
		ID:             uuid.NewString(),
		Title:          title,
		TargetLocation: target,
		Description:    description,
		CreatorID:      in.CreatorID,
		Status:         StatusCreated,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.repo.Create(ctx, conf); err != nil {
		return nil, err
	}

	s.logger.Info("Conference created",
		zap.String("conference_id", conf.ID),
		zap.String("target_location", conf.TargetLocation),
		zap.Uint("creator_id", conf.CreatorID),
	)
	return conf, nil
}

// Get returns a conference with its participants and items.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	conf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	participants, err := s.participants(ctx, conf)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Conference: *conf, Participants: participants, Items: items}, nil
}

// AddParticipant resolves identifier by e-mail or badge and adds the user. Adding a user
// twice returns the same participation; adding the owner returns the owner view.
func (s *Service) AddParticipant(ctx context.Context, conferenceID, identifier string) (*Participant, error) {
	conf, err := s.openConference(ctx, conferenceID)
	if err != nil {
		return nil, err
	}

	user, err := s.identity.FindByEmailOrBadge(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if user.ID == conf.CreatorID {
		return ownerView(conf), nil
	}

	row, err := s.repo.UpsertParticipation(ctx, conf.ID, user.ID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Participant added",
		zap.String("conference_id", conf.ID),
		zap.Uint("user_id", user.ID),
		zap.Uint("participation_id", row.ID),
	)
	return participationView(*row), nil
}

// SubmitItem verifies code against the declared location and stores the result.
func (s *Service) SubmitItem(ctx context.Context, in SubmitItemInput) (*Item, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, apperror.Validation("code is required")
	}
	if in.UserID == 0 {
		return nil, apperror.Validation("userId is required")
	}

	conf, err := s.openConference(ctx, in.ConferenceID)
	if err != nil {
		return nil, err
	}

	declared := strings.TrimSpace(in.DeclaredLocation)
	if declared == "" {
		declared = conf.TargetLocation
	}
	if utf8.RuneCountInString(declared) > MaxLocationLength {
		return nil, apperror.Validation("declaredLocation exceeds %d characters", MaxLocationLength)
	}

	v, err := reconcile.VerifyOne(ctx, s.registry, code, declared)
	if err != nil {
		return nil, err
	}

	item := &Item{
		ConferenceID:    conf.ID,
		Code:            v.Asset.Code,
		UserID:          in.UserID,
		ScannedLocation: declared,
		Belongs:         v.Belongs,
		ActualLocation:  v.ActualLocation,
		CreatedAt:       s.clock.Now(),
	}
	if err := s.repo.InsertItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Status reconciles the current items of a conference.
func (s *Service) Status(ctx context.Context, id string) (*StatusSummary, error) {
	conf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	report, err := BuildReport(ctx, s.registry, *conf, items)
	if err != nil {
		return nil, err
	}
	return &StatusSummary{
		ConferenceID:   conf.ID,
		Status:         conf.Status,
		TargetLocation: conf.TargetLocation,
		ItemCount:      len(items),
		TotalExpected:  report.TotalExpected,
		TotalVerified:  report.TotalVerified,
		TotalMissing:   report.TotalMissing,
		TotalForeign:   report.TotalForeign,
	}, nil
}

// Finalize closes the conference and sends the report to every participant. Once the
// transition is committed the call succeeds; delivery problems only show in the result.
func (s *Service) Finalize(ctx context.Context, id string) (*FinalizeResult, error) {
	at := s.clock.Now()
	if err := s.repo.Finalize(ctx, id, at); err != nil {
		return nil, err
	}
	l := s.logger.With(zap.String("conference_id", id))
	l.Info("Conference finalized")

	conf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		l.Warn("Finalized conference could not be read", zap.Error(err))
		return &FinalizeResult{
			Conference:    Conference{ID: id, Status: StatusFinalized, FinalizedAt: &at},
			Recipients:    []string{},
			DeliveryError: err.Error(),
		}, nil
	}

	result := &FinalizeResult{Conference: *conf, Recipients: []string{}}
	if err := s.deliver(ctx, conf, result); err != nil {
		l.Warn("Report delivery failed", zap.Error(err))
		result.DeliveryError = err.Error()
		return result, nil
	}
	result.Delivered = true
	l.Info("Report delivered", zap.Int("recipients", len(result.Recipients)))
	return result, nil
}

func (s *Service) deliver(ctx context.Context, conf *Conference, result *FinalizeResult) error {
	items, err := s.repo.Items(ctx, conf.ID)
	if err != nil {
		return err
	}
	report, err := BuildReport(ctx, s.registry, *conf, items)
	if err != nil {
		return err
	}
	result.Report = report

	members, err := s.members(ctx, conf)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.ID == conf.CreatorID {
			report.CreatorName = m.FullName()
		}
	}
	result.Recipients = emails(members)

	msg := RenderReport(report)

	// Delivery outlives a client that hangs up after the transition.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	return s.sink.Send(sendCtx, result.Recipients, msg.Subject, msg.Body)
}

// History returns the conferences userID owns or takes part in, newest first.
func (s *Service) History(ctx context.Context, userID uint) ([]HistoryEntry, error) {
	if userID == 0 {
		return nil, apperror.Validation("userId is required")
	}
	confs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(confs))
	for _, conf := range confs {
		out = append(out, HistoryEntry{Conference: conf, Owner: conf.CreatorID == userID})
	}
	return out, nil
}

func (s *Service) openConference(ctx context.Context, id string) (*Conference, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validation("conference id is required")
	}
	conf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conf.IsFinalized() {
		return nil, apperror.InvalidState("conference %s is finalized", id)
	}
	return conf, nil
}

// participants is the owner followed by the stored participations.
func (s *Service) participants(ctx context.Context, conf *Conference) ([]Participant, error) {
	rows, err := s.repo.Participations(ctx, conf.ID)
	if err != nil {
		return nil, err
	}
	out := make([]Participant, 0, len(rows)+1)
	out = append(out, *ownerView(conf))
	for _, row := range rows {
		if row.UserID == conf.CreatorID {
			continue
		}
		out = append(out, *participationView(row))
	}
	return out, nil
}

// members resolves every participant, owner included.
func (s *Service) members(ctx context.Context, conf *Conference) ([]users.User, error) {
	participants, err := s.participants(ctx, conf)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.UserID)
	}
	return s.identity.FindByIDs(ctx, ids)
}

func emails(members []users.User) []string {
	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		email := strings.TrimSpace(m.Email)
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

func ownerView(conf *Conference) *Participant {
	return &Participant{UserID: conf.CreatorID, Owner: true, JoinedAt: conf.CreatedAt}
}

func participationView(row Participation) *Participant {
	id := row.ID
	return &Participant{UserID: row.UserID, ParticipationID: &id, JoinedAt: row.CreatedAt}
}
