package repository

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

// AddRelation inserts the (user, target) membership. An existing pair is
// reported as ErrDuplicate by the unique index, an unknown target as ErrNotFound.
func (r *Repository) AddRelation(ctx context.Context, kind model.RelationKind, userID, targetID uint) error {
	row, err := kind.NewRow(userID, targetID)
	if err != nil {
		return err
	}

	if result := r.DB.WithContext(ctx).Create(row); result.Error != nil {
		return translate(result.Error)
	}

	return nil
}

// RemoveRelation deletes the (user, target) membership and reports whether it existed.
func (r *Repository) RemoveRelation(ctx context.Context, kind model.RelationKind, userID, targetID uint) (bool, error) {
	row, err := kind.NewRow(0, 0)
	if err != nil {
		return false, err
	}

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND "+kind.TargetColumn()+" = ?", userID, targetID).
		Delete(row)
	if result.Error != nil {
		r.Logger.Error("error removing relation", zap.String("kind", string(kind)),
			zap.Uint("user_id", userID), zap.Uint("target_id", targetID), zap.Error(result.Error))

		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// RelatedTargets returns which of targetIDs the user holds in the relation.
func (r *Repository) RelatedTargets(ctx context.Context, kind model.RelationKind, userID uint, targetIDs []uint) (map[uint]bool, error) {
	related := make(map[uint]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return related, nil
	}

	row, err := kind.NewRow(0, 0)
	if err != nil {
		return nil, err
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Model(row).
		Where("user_id = ? AND "+kind.TargetColumn()+" IN ?", userID, targetIDs).
		Pluck(kind.TargetColumn(), &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range ids {
		related[id] = true
	}

	return related, nil
}
