package host

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/loadbutton/internal/model"
)

// OperationIDPrefix prefixes every generated operation ID
const OperationIDPrefix = "op-"

// SimulatedService stands in for a download manager: each started operation
// reports completion after a fixed delay, failing with the configured
// probability. It performs no I/O.
type SimulatedService struct {
	ops         map[string]*model.Operation
	cancels     map[string]context.CancelFunc
	opsMutex    sync.RWMutex
	delay       time.Duration
	failureRate float64
	rng         *rand.Rand
	onUpdate    func(*model.Operation) // callback for UI updates
}

// NewSimulatedService creates a service completing operations after delay
func NewSimulatedService(delay time.Duration, failureRate float64) *SimulatedService {
	return &SimulatedService{
		ops:         make(map[string]*model.Operation),
		cancels:     make(map[string]context.CancelFunc),
		delay:       delay,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetUpdateCallback sets the callback function for operation updates
func (s *SimulatedService) SetUpdateCallback(callback func(*model.Operation)) {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()
	s.onUpdate = callback
}

// Start issues a new operation for repo
func (s *SimulatedService) Start(repo model.Repository) (*model.Operation, error) {
	if err := validateURL(repo.URL); err != nil {
		return nil, fmt.Errorf("start operation for %q: %w", repo.Key, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	op := &model.Operation{
		ID:         generateOperationID(),
		Repository: repo,
		Status:     model.OperationRunning,
		StartedAt:  time.Now(),
	}

	s.opsMutex.Lock()
	s.ops[op.ID] = op
	s.cancels[op.ID] = cancel
	s.opsMutex.Unlock()

	log.Printf("Operation %s started for %s", op.ID, repo.URL)
	go s.run(ctx, op)

	snapshot := *op
	return &snapshot, nil
}

// Get returns a snapshot of an operation by ID
func (s *SimulatedService) Get(id string) (*model.Operation, bool) {
	s.opsMutex.RLock()
	defer s.opsMutex.RUnlock()
	op, exists := s.ops[id]
	if !exists {
		return nil, false
	}
	snapshot := *op
	return &snapshot, true
}

// Cancel abandons a running operation
func (s *SimulatedService) Cancel(id string) error {
	s.opsMutex.RLock()
	op, exists := s.ops[id]
	cancel := s.cancels[id]
	var status model.OperationStatus
	if exists {
		status = op.Status
	}
	s.opsMutex.RUnlock()

	if !exists {
		return fmt.Errorf("operation not found: %s", id)
	}
	if status.IsFinished() {
		return fmt.Errorf("operation is not running: %s", status)
	}
	cancel()
	return nil
}

// run waits for the simulated transfer to end
func (s *SimulatedService) run(ctx context.Context, op *model.Operation) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	var status model.OperationStatus
	var lastErr string
	select {
	case <-timer.C:
		if s.shouldFail() {
			status = model.OperationFailed
			lastErr = "simulated transfer failure"
		} else {
			status = model.OperationSucceeded
		}
	case <-ctx.Done():
		status = model.OperationCanceled
		lastErr = ctx.Err().Error()
	}

	s.opsMutex.Lock()
	op.Status = status
	op.LastError = lastErr
	op.FinishedAt = time.Now()
	if cancel, ok := s.cancels[op.ID]; ok {
		cancel()
		delete(s.cancels, op.ID)
	}
	snapshot := *op
	s.opsMutex.Unlock()

	log.Printf("Operation %s finished: %s", op.ID, status)
	s.notifyUpdate(&snapshot)
}

func (s *SimulatedService) shouldFail() bool {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()
	return s.rng.Float64() < s.failureRate
}

// notifyUpdate calls the update callback if set
func (s *SimulatedService) notifyUpdate(op *model.Operation) {
	s.opsMutex.RLock()
	callback := s.onUpdate
	s.opsMutex.RUnlock()
	if callback != nil {
		callback(op)
	}
}

// validateURL checks the operation target is an http(s) URL
func validateURL(input string) error {
	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// generateOperationID generates a unique, time ordered operation ID
func generateOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(OperationIDPrefix+"%d", time.Now().UnixNano())
	}
	return OperationIDPrefix + id.String()
}
