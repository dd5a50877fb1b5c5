package domain

import (
	"errors"
	"time"
)

// ActivityStatus represents the lifecycle state of an activity or sub-activity.
type ActivityStatus string

const (
	ActivityPending    ActivityStatus = "PENDENTE"
	ActivityInProgress ActivityStatus = "EM_ANDAMENTO"
	ActivityDone       ActivityStatus = "CONCLUIDA"
)

var ErrActivityNotFound = errors.New("activity not found")
var ErrSubActivityNotFound = errors.New("sub-activity not found")

// Activity is a task inside a project, optionally broken into sub-activities.
type Activity struct {
	ID            string          `json:"idAtividade" bson:"_id,omitempty"`
	ProjectID     string          `json:"idProjeto" bson:"id_projeto"`
	AssigneeID    string          `json:"idResponsavel,omitempty" bson:"id_responsavel,omitempty"`
	Title         string          `json:"titulo" bson:"titulo"`
	Description   string          `json:"descricao,omitempty" bson:"descricao,omitempty"`
	PlannedStart  *time.Time      `json:"dataInicioPrevista,omitempty" bson:"data_inicio_prevista,omitempty"`
	PlannedEnd    *time.Time      `json:"dataTerminoPrevista,omitempty" bson:"data_termino_prevista,omitempty"`
	ActualEnd     *time.Time      `json:"dataTerminoReal,omitempty" bson:"data_termino_real,omitempty"`
	Status        ActivityStatus  `json:"status" bson:"status"`
	Priority      ProjectPriority `json:"prioridade" bson:"prioridade"`
	CreatedAt     time.Time       `json:"dataCadastro" bson:"data_cadastro"`
	SubActivities []SubActivity   `json:"subatividades,omitempty" bson:"-"`
}

// SubActivity is a finer-grained task belonging to one activity. It reuses
// the activity status and priority vocabularies.
type SubActivity struct {
	ID           string          `json:"idSubAtividade" bson:"_id,omitempty"`
	ActivityID   string          `json:"idAtividade" bson:"id_atividade"`
	Title        string          `json:"titulo" bson:"titulo"`
	Description  string          `json:"descricao,omitempty" bson:"descricao,omitempty"`
	PlannedStart *time.Time      `json:"dataInicioPrevista,omitempty" bson:"data_inicio_prevista,omitempty"`
	PlannedEnd   *time.Time      `json:"dataTerminoPrevista,omitempty" bson:"data_termino_prevista,omitempty"`
	ActualEnd    *time.Time      `json:"dataTerminoReal,omitempty" bson:"data_termino_real,omitempty"`
	Status       ActivityStatus  `json:"status" bson:"status"`
	Priority     ProjectPriority `json:"prioridade" bson:"prioridade"`
	CreatedAt    time.Time       `json:"dataCadastro" bson:"data_cadastro"`
}
