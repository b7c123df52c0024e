package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lmp/entities"
	"lmp/pkg/state/repository"
)

type stateRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StateRepository { return &stateRepo{db} }

func (r *stateRepo) Get(key string) (string, bool, error) {
	var doc entities.StateDocument
	err := r.db.Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

func (r *stateRepo) Put(key, value string) error {
	doc := entities.StateDocument{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&doc).Error
}

func (r *stateRepo) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.Where("key IN ?", keys).Delete(&entities.StateDocument{}).Error
}
