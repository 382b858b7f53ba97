package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
)

const DefaultChannelTimeout = 5 * time.Second

type Channel interface {
	Name() string
	Notify(ctx context.Context, alerts []*models.Alert) error
}

type Delivery struct {
	Channel string
	Err     error
}

type Result struct {
	Persisted int
	Urgent    int

	wg         sync.WaitGroup
	lock       sync.Mutex
	deliveries []Delivery
}

func (r *Result) record(d Delivery) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.deliveries = append(r.deliveries, d)
}

// Wait blocks until every channel started for the batch has finished.
func (r *Result) Wait() []Delivery {
	r.wg.Wait()
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Delivery(nil), r.deliveries...)
}

type Dispatcher struct {
	store         db.AlertDB
	channels      []Channel
	timeout       time.Duration
	logger        lager.Logger
	notifications *prometheus.CounterVec
}

var _ prometheus.Collector = &Dispatcher{}

func NewDispatcher(store db.AlertDB, channels []Channel, timeout time.Duration, logger lager.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultChannelTimeout
	}
	return &Dispatcher{
		store:    store,
		channels: channels,
		timeout:  timeout,
		logger:   logger.Session("alert-dispatcher"),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perfmon",
			Subsystem: "notifier",
			Name:      "notifications_total",
			Help:      "Notification attempts per channel and outcome",
		}, []string{"channel", "outcome"}),
	}
}

// Dispatch persists the alerts and, when any of them is high or critical,
// notifies every channel in the background. It returns once the alerts are
// stored; notification outcomes are available from Result.Wait.
func (d *Dispatcher) Dispatch(ctx context.Context, alerts []*models.Alert) (*Result, error) {
	result := &Result{}
	if len(alerts) == 0 {
		return result, nil
	}

	if err := d.store.SaveAlerts(ctx, alerts); err != nil {
		d.logger.Error("failed-to-save-alerts", err, lager.Data{"count": len(alerts)})
		return nil, &models.StorageError{Op: "save alerts", Err: err}
	}
	result.Persisted = len(alerts)

	urgent, routine := Partition(alerts)
	result.Urgent = len(urgent)
	if len(urgent) == 0 {
		d.logger.Debug("no-urgent-alerts", lager.Data{"routine": len(routine)})
		return result, nil
	}

	detached := context.WithoutCancel(ctx)
	for _, channel := range d.channels {
		result.wg.Add(1)
		go func(channel Channel) {
			defer result.wg.Done()
			result.record(d.notify(detached, channel, urgent))
		}(channel)
	}
	return result, nil
}

func (d *Dispatcher) notify(parent context.Context, channel Channel, alerts []*models.Alert) (delivery Delivery) {
	delivery.Channel = channel.Name()
	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			delivery.Err = &models.NotificationError{Channel: channel.Name(), Err: panicError{r}}
			d.failed(delivery)
		}
	}()

	if err := channel.Notify(ctx, alerts); err != nil {
		delivery.Err = &models.NotificationError{Channel: channel.Name(), Err: err}
		d.failed(delivery)
		return delivery
	}
	d.notifications.WithLabelValues(channel.Name(), "sent").Inc()
	d.logger.Info("notified", lager.Data{"channel": channel.Name(), "alerts": len(alerts)})
	return delivery
}

func (d *Dispatcher) failed(delivery Delivery) {
	d.notifications.WithLabelValues(delivery.Channel, "failed").Inc()
	d.logger.Error("failed-to-notify", delivery.Err, lager.Data{"channel": delivery.Channel})
}

func (d *Dispatcher) Describe(ch chan<- *prometheus.Desc) {
	d.notifications.Describe(ch)
}

func (d *Dispatcher) Collect(ch chan<- prometheus.Metric) {
	d.notifications.Collect(ch)
}

// Partition splits alerts into urgent (high, critical) and routine ones,
// preserving order.
func Partition(alerts []*models.Alert) (urgent, routine []*models.Alert) {
	for _, alert := range alerts {
		if alert.Severity.IsUrgent() {
			urgent = append(urgent, alert)
		} else {
			routine = append(routine, alert)
		}
	}
	return urgent, routine
}

type panicError struct{ value interface{} }

func (p panicError) Error() string {
	return fmt.Sprintf("channel panicked: %v", p.value)
}
