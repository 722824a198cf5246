package slot

import (
	"context"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockTTL     = 2 * time.Minute
	fallbackCronSpec  = "@hourly"
	defaultWarmWindow = 14
)

// Worker periodically precomputes availability so the first patient of the day hits a warm cache.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	doctors      contracts.DoctorRepository
	availability contracts.SlotUsecase
	stop         chan struct{}
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
	now          func() time.Time
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, doctorRepository contracts.DoctorRepository, slotUsecase contracts.SlotUsecase) *Worker {
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		doctors:      doctorRepository,
		availability: slotUsecase,
		stop:         make(chan struct{}),
		now:          time.Now,
	}
}

// Start schedules the warmer on the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.AvailabilityWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("availability.worker: failed to schedule with provided cron spec; falling back to "+fallbackCronSpec,
			zap.String("spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running warm-up to finish.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyAvailabilityWarmerLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("availability.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("availability.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyAvailabilityWarmerLeader, token); err != nil {
			w.log.Warn("availability.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLeaderLock(refreshCtx, token)

	doctorIDs, err := w.doctors.FindIDsByApprovalStatus(ctx, constvars.ApprovalStatusApproved)
	if err != nil {
		w.log.Warn("availability.worker: listing approved doctors failed", zap.Error(err))
		return
	}

	warmed := 0
	for _, doctorID := range doctorIDs {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}
		warmed += w.warmDoctor(ctx, doctorID)
	}
	w.log.Info("availability.worker: warm-up finished",
		zap.Int("doctors", len(doctorIDs)),
		zap.Int(constvars.LoggingCountKey, warmed),
	)
}

func (w *Worker) refreshLeaderLock(ctx context.Context, token string) {
	tick := time.NewTicker(leaderLockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyAvailabilityWarmerLeader, token, leaderLockTTL); err != nil {
				w.log.Warn("availability.worker: failed to refresh leader lock TTL", zap.Error(err))
			}
		}
	}
}

// warmDoctor computes every day of the window for both modes and returns how many days were cached.
func (w *Worker) warmDoctor(ctx context.Context, doctorID string) int {
	days := w.cfg.App.AvailabilityWindowDays
	if days <= 0 {
		days = defaultWarmWindow
	}

	loc := w.cfg.App.Location()
	today := utils.StartOfDay(w.now().In(loc))
	ctx = utils.WithRequestID(ctx, utils.GenerateRequestID())

	warmed := 0
	for i := 1; i <= days; i++ {
		date := today.AddDate(0, 0, i).Format(constvars.DateLayout)
		for _, mode := range []string{constvars.AppointmentModeOnline, constvars.AppointmentModeInPerson} {
			_, err := w.availability.GetAvailability(ctx, &requests.AvailabilityQuery{
				DoctorID: doctorID,
				Date:     date,
				Mode:     mode,
			})
			if err != nil {
				w.log.Warn("availability.worker: warm-up failed",
					zap.String(constvars.LoggingDoctorIDKey, doctorID),
					zap.String(constvars.LoggingDateKey, date),
					zap.String(constvars.LoggingModeKey, mode),
					zap.Error(err),
				)
				return warmed
			}
			warmed++
		}
	}
	return warmed
}
