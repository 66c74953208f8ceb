package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

func (r *Repository) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Order("id").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error) {
	var tag model.Tag

	if result := r.DB.WithContext(ctx).First(&tag, tagID); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &tag, nil
}

func (r *Repository) GetTagsByIDs(ctx context.Context, ids []uint) (map[uint]model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	tagsByID := make(map[uint]model.Tag, len(tags))

	for index := range tags {
		tag := tags[index]
		tagsByID[tag.ID] = *tag
	}

	return tagsByID, nil
}

// AddTags inserts tags that are not present yet, matching on slug.
func (r *Repository) AddTags(ctx context.Context, tags []model.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	// gorm writes generated ids back into the rows
	rows := append([]model.Tag(nil), tags...)

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&rows)

	return result.Error
}
