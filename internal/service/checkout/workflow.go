package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/Domenick1991/spacify/internal/service/notifications"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

type Step string

const (
	StepVerify     Step = "VERIFY"
	StepDetails    Step = "DETAILS"
	StepPay        Step = "PAY"
	StepProcessing Step = "PROCESSING"
	StepSuccess    Step = "SUCCESS"
)

var Banks = []string{"HDFC Bank", "ICICI Bank", "State Bank of India", "Axis Bank"}

const (
	DefaultSettlementDelay = 3 * time.Second
	DefaultDisplayDelay    = 2 * time.Second
)

type WorkflowUseCase interface {
	Start(offer domain.Offer) error
	Confirm() error
	UpdateDetails(details domain.ConsignorDetails) error
	CanProceed() bool
	ProceedToPayment() error
	SelectBank(bank string) error
	Pay(ctx context.Context) error
	Cancel() error
	Session() (*Session, error)
	Quote(offer domain.Offer) Quote
}

type Ledger interface {
	Add(ctx context.Context, booking domain.Booking)
}

type Localizer interface {
	Language() domain.Language
}

// Session is a snapshot of the checkout in progress.
type Session struct {
	Step      Step                    `json:"step"`
	Offer     domain.Offer            `json:"offer"`
	Details   domain.ConsignorDetails `json:"details"`
	Bank      string                  `json:"bank,omitempty"`
	Quote     Quote                   `json:"quote"`
	BookingID string                  `json:"booking_id,omitempty"`
}

// Workflow drives a single checkout session from VERIFY to SUCCESS.
type Workflow struct {
	mu      sync.Mutex
	session *Session
	// seq identifies the current session so stale timers do nothing.
	seq uint64

	ledger    Ledger
	feed      notifications.FeedUseCase
	clock     clockwork.Clock
	ids       IDGenerator
	localizer Localizer
	log       *slog.Logger

	settlementDelay time.Duration
	displayDelay    time.Duration
	taxRate         decimal.Decimal
}

type Option func(*Workflow)

func WithClock(c clockwork.Clock) Option {
	return func(w *Workflow) { w.clock = c }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(w *Workflow) { w.ids = g }
}

func WithDelays(settlement, display time.Duration) Option {
	return func(w *Workflow) {
		w.settlementDelay = settlement
		w.displayDelay = display
	}
}

func WithTaxRate(rate decimal.Decimal) Option {
	return func(w *Workflow) { w.taxRate = rate }
}

func WithLocalizer(l Localizer) Option {
	return func(w *Workflow) { w.localizer = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) { w.log = l }
}

func NewWorkflow(ledger Ledger, feed notifications.FeedUseCase, opts ...Option) *Workflow {
	w := &Workflow{
		ledger:          ledger,
		feed:            feed,
		clock:           clockwork.NewRealClock(),
		ids:             UUIDGenerator{},
		log:             logging.Discard(),
		settlementDelay: DefaultSettlementDelay,
		displayDelay:    DefaultDisplayDelay,
		taxRate:         DefaultTaxRate,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start opens a VERIFY session for offer, replacing any session that has not
// reached payment. FULL offers and a settling session leave state untouched.
func (w *Workflow) Start(offer domain.Offer) error {
	if !offer.Bookable() {
		return fmt.Errorf("%w: %s", domain.ErrOfferFull, offer.ID)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session != nil && (w.session.Step == StepProcessing || w.session.Step == StepSuccess) {
		return domain.ErrCheckoutBusy
	}
	w.seq++
	w.session = &Session{
		Step:  StepVerify,
		Offer: offer,
		Quote: NewQuote(offer, w.taxRate),
	}
	return nil
}

func (w *Workflow) Confirm() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.expect(StepVerify); err != nil {
		return err
	}
	w.session.Step = StepDetails
	return nil
}

func (w *Workflow) UpdateDetails(details domain.ConsignorDetails) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.expect(StepDetails); err != nil {
		return err
	}
	w.session.Details = details.Normalize()
	return nil
}

// CanProceed reports whether the details form unlocks payment.
func (w *Workflow) CanProceed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session != nil && w.session.Step == StepDetails && w.session.Details.Complete()
}

func (w *Workflow) ProceedToPayment() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.expect(StepDetails); err != nil {
		return err
	}
	if !w.session.Details.Complete() {
		return domain.ErrConsignorIncomplete
	}
	w.session.Step = StepPay
	return nil
}

func (w *Workflow) SelectBank(bank string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.expect(StepPay); err != nil {
		return err
	}
	if !slices.Contains(Banks, bank) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownBank, bank)
	}
	w.session.Bank = bank
	return nil
}

// Pay starts settlement. The session cannot be cancelled from here on.
func (w *Workflow) Pay(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.expect(StepPay); err != nil {
		return err
	}
	if w.session.Bank == "" {
		return domain.ErrChooseBank
	}
	w.session.Step = StepProcessing
	seq := w.seq
	settleCtx := context.WithoutCancel(ctx)
	w.clock.AfterFunc(w.settlementDelay, func() { w.settle(settleCtx, seq) })
	w.log.Info("payment processing", "offer_id", w.session.Offer.ID, "bank", w.session.Bank)
	return nil
}

func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session == nil {
		return domain.ErrNoSession
	}
	switch w.session.Step {
	case StepProcessing, StepSuccess:
		return domain.ErrCancelUnavailable
	}
	w.session = nil
	w.seq++
	return nil
}

func (w *Workflow) Session() (*Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session == nil {
		return nil, domain.ErrNoSession
	}
	s := *w.session
	return &s, nil
}

func (w *Workflow) Quote(offer domain.Offer) Quote {
	return NewQuote(offer, w.taxRate)
}

func (w *Workflow) settle(ctx context.Context, seq uint64) {
	w.mu.Lock()
	if w.session == nil || w.seq != seq || w.session.Step != StepProcessing {
		w.mu.Unlock()
		return
	}
	offer := w.session.Offer
	w.mu.Unlock()

	booking := domain.Booking{
		ID:               w.ids.NewID(),
		OfferID:          offer.ID,
		OfferOrigin:      offer.Origin,
		OfferDestination: offer.Destination,
		SpaceReserved:    1,
		TotalPrice:       offer.PricePerCBM,
		Status:           domain.BookingStatusPaid,
		CreatedAt:        w.clock.Now(),
	}
	w.ledger.Add(ctx, booking)
	w.feed.Post(ctx, notifications.SpaceSecured(w.language(), offer.Origin))
	w.log.Info("booking settled", "booking_id", booking.ID, "offer_id", offer.ID, "total_price", booking.TotalPrice)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seq != seq || w.session == nil {
		return
	}
	w.session.Step = StepSuccess
	w.session.BookingID = booking.ID
	w.clock.AfterFunc(w.displayDelay, func() { w.dismiss(seq) })
}

func (w *Workflow) dismiss(seq uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session != nil && w.seq == seq && w.session.Step == StepSuccess {
		w.session = nil
	}
}

func (w *Workflow) expect(step Step) error {
	if w.session == nil {
		return domain.ErrNoSession
	}
	if w.session.Step != step {
		return fmt.Errorf("%w: at %s, need %s", domain.ErrWrongStep, w.session.Step, step)
	}
	return nil
}

func (w *Workflow) language() domain.Language {
	if w.localizer == nil {
		return domain.LanguageEnglish
	}
	return w.localizer.Language()
}

var _ WorkflowUseCase = (*Workflow)(nil)
