// README: Redis-backed wizard draft persistence across page loads.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"drivehire/internal/types"
)

// draftTTL bounds how long an abandoned draft survives. Expiry is the
// abandonment path: nothing is ever submitted from it.
const draftTTL = 30 * time.Minute

type draftRecord struct {
	Step  Step  `json:"step"`
	Draft Draft `json:"draft"`
}

// DraftStore keeps at most one in-progress draft per customer.
type DraftStore struct {
	rdb *redis.Client
}

func NewDraftStore(rdb *redis.Client) *DraftStore {
	return &DraftStore{rdb: rdb}
}

func draftKey(customerID types.ID) string {
	return "booking:draft:" + string(customerID)
}

func (s *DraftStore) Save(ctx context.Context, customerID types.ID, step Step, d Draft) error {
	payload, err := json.Marshal(draftRecord{Step: step, Draft: d})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(customerID), payload, draftTTL).Err()
}

// Load returns the saved step and draft; ok is false when none exists.
func (s *DraftStore) Load(ctx context.Context, customerID types.ID) (Step, Draft, bool, error) {
	raw, err := s.rdb.Get(ctx, draftKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return StepServiceType, NewDraft(), false, nil
	}
	if err != nil {
		return 0, Draft{}, false, err
	}
	var rec draftRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return 0, Draft{}, false, err
	}
	return rec.Step, rec.Draft, true, nil
}

func (s *DraftStore) Clear(ctx context.Context, customerID types.ID) error {
	return s.rdb.Del(ctx, draftKey(customerID)).Err()
}
