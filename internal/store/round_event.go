package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetCategory(data.Category).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}

	return nil
}
