package repository

import (
	"tower_trivia_backend/internal/model"

	"gorm.io/gorm"
)

// ContentRepository reads and maintains the world/tower/level/question
// content tree. The tree is read-only for gameplay; the admin surface
// mutates it.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) ListWorlds() ([]model.World, error) {
	var worlds []model.World
	err := r.DB.Order("world_id").Find(&worlds).Error
	return worlds, err
}

func (r *ContentRepository) ListTowers() ([]model.Tower, error) {
	var towers []model.Tower
	err := r.DB.Order("world_id, tower_id").Find(&towers).Error
	return towers, err
}

// WorldQuestionRow is one question flattened with its owning world.
type WorldQuestionRow struct {
	WorldID      uint   `json:"world_id"`
	QuestionBody string `json:"question_body"`
}

// WorldQuestionRows returns every question joined up to its world,
// ordered by world, tower, level, question id.
func (r *ContentRepository) WorldQuestionRows() ([]WorldQuestionRow, error) {
	var rows []WorldQuestionRow
	err := r.DB.
		Table("world").
		Select("world.world_id, question.question_body").
		Joins("JOIN tower ON tower.world_id = world.world_id").
		Joins("JOIN level ON level.tower_id = tower.tower_id").
		Joins("JOIN question ON question.level_id = level.level_id").
		Order("world.world_id, tower.tower_id, level.level_id, question.question_id").
		Scan(&rows).Error
	return rows, err
}

func (r *ContentRepository) FindTowerByName(name string) (*model.Tower, error) {
	var tower model.Tower
	err := r.DB.Where("tower_name = ?", name).First(&tower).Error
	return &tower, err
}

// MinLevelID returns the lowest level id of a tower, the entry level
// for players without a progress row.
func (r *ContentRepository) MinLevelID(towerID uint) (uint, error) {
	var min *uint
	err := r.DB.Model(&model.Level{}).
		Where("tower_id = ?", towerID).
		Select("MIN(level_id)").
		Scan(&min).Error
	if err != nil {
		return 0, err
	}
	if min == nil {
		return 0, gorm.ErrRecordNotFound
	}
	return *min, nil
}

func (r *ContentRepository) FindLevelByID(levelID uint) (*model.Level, error) {
	var level model.Level
	err := r.DB.First(&level, levelID).Error
	return &level, err
}

func (r *ContentRepository) QuestionsByLevel(levelID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("level_id = ?", levelID).Order("question_id").Find(&questions).Error
	return questions, err
}

// AnswersByQuestionIDs returns all answers of the given questions in a
// stable order, so the correct index is reproducible per question.
func (r *ContentRepository) AnswersByQuestionIDs(questionIDs []uint) ([]model.Answer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var answers []model.Answer
	err := r.DB.Where("question_id IN ?", questionIDs).Order("question_id, answer_id").Find(&answers).Error
	return answers, err
}

func (r *ContentRepository) QuestionsByIDs(questionIDs []uint) ([]model.Question, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var questions []model.Question
	err := r.DB.Where("question_id IN ?", questionIDs).Order("question_id").Find(&questions).Error
	return questions, err
}

// FirstQuestionIDByBody resolves a question body to an id. Bodies are
// not constrained unique; the lowest id wins so the lookup stays
// deterministic.
func (r *ContentRepository) FirstQuestionIDByBody(body string) (uint, error) {
	var question model.Question
	err := r.DB.Where("question_body = ?", body).Order("question_id").First(&question).Error
	if err != nil {
		return 0, err
	}
	return question.QuestionID, nil
}

// AnswerIDByBodies resolves an (question body, answer body) pair to the
// answer id, joining so the answer must belong to that question.
func (r *ContentRepository) AnswerIDByBodies(questionBody, answerBody string) (uint, error) {
	var answer model.Answer
	err := r.DB.
		Joins("JOIN question ON question.question_id = answer.question_id").
		Where("question.question_body = ? AND answer.answer_body = ?", questionBody, answerBody).
		Order("answer.answer_id").
		First(&answer).Error
	if err != nil {
		return 0, err
	}
	return answer.AnswerID, nil
}

func (r *ContentRepository) CreateWorld(world *model.World) error {
	return r.DB.Create(world).Error
}

func (r *ContentRepository) CreateTower(tower *model.Tower) error {
	return r.DB.Create(tower).Error
}

func (r *ContentRepository) CreateLevel(level *model.Level) error {
	return r.DB.Create(level).Error
}

func (r *ContentRepository) DeleteQuestion(questionID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, questionID).Error
	})
}
