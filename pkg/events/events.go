package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"scratch_backend/pkg/logger"

	"github.com/nats-io/nats.go"
)

const DefaultSubjectPrefix = "scratch"

// Типы событий, они же суффиксы subject
const (
	TypePlay        = "play"
	TypePity        = "pity"
	TypeSettlement  = "settlement"
	TypeFulfillment = "fulfillment"
)

type Event struct {
	Type      string `json:"type"`
	Address   string `json:"address"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

type Emitter interface {
	Emit(event Event) error
	Close()
}

// Publisher то, что нужно эмиттеру от соединения NATS
type Publisher interface {
	Publish(subject string, data []byte) error
	Close()
}

type emitter struct {
	pub           Publisher
	subjectPrefix string
}

func NewEmitter(pub Publisher, subjectPrefix string) Emitter {
	if subjectPrefix == "" {
		subjectPrefix = DefaultSubjectPrefix
	}
	return &emitter{
		pub:           pub,
		subjectPrefix: strings.TrimSuffix(subjectPrefix, "."),
	}
}

// Connect подключается к NATS и переподключается бесконечно
func Connect(url string) (*nats.Conn, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	conn, err := nats.Connect(url,
		nats.Name("scratch-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("disconnected from NATS", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// Subject subject события: <prefix>.<type>
func (e *emitter) Subject(eventType string) string {
	return e.subjectPrefix + "." + eventType
}

func (e *emitter) Emit(event Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UTC().Unix()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.pub.Publish(e.Subject(event.Type), data)
}

func (e *emitter) Close() {
	if e.pub != nil {
		e.pub.Close()
	}
}

type nopEmitter struct{}

// Nop эмиттер без брокера, когда NATS_URL не задан
func Nop() Emitter {
	return nopEmitter{}
}

func (nopEmitter) Emit(Event) error { return nil }
func (nopEmitter) Close()           {}

// Recorder хранит события в памяти
type Recorder struct {
	mtx    sync.Mutex
	events []Event
}

func (r *Recorder) Emit(event Event) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() {}

// Events копия записанных событий
func (r *Recorder) Events() []Event {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType события одного типа
func (r *Recorder) OfType(eventType string) []Event {
	res := make([]Event, 0)
	for _, e := range r.Events() {
		if e.Type == eventType {
			res = append(res, e)
		}
	}
	return res
}
