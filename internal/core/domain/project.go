package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANEJAMENTO"
	ProjectInProgress ProjectStatus = "EM_ANDAMENTO"
	ProjectPaused     ProjectStatus = "PAUSADO"
	ProjectDone       ProjectStatus = "CONCLUIDO"
	ProjectCancelled  ProjectStatus = "CANCELADO"
)

// ProjectPriority represents the urgency assigned to a project.
type ProjectPriority string

const (
	PriorityLow    ProjectPriority = "BAIXA"
	PriorityMedium ProjectPriority = "MEDIA"
	PriorityHigh   ProjectPriority = "ALTA"
	PriorityUrgent ProjectPriority = "URGENTE"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is a unit of work carried out for a company.
type Project struct {
	ID           string          `json:"idProjeto" bson:"_id,omitempty"`
	CompanyID    string          `json:"idEmpresa" bson:"id_empresa"`
	ManagerID    string          `json:"idGerente,omitempty" bson:"id_gerente,omitempty"`
	Title        string          `json:"titulo" bson:"titulo"`
	Description  string          `json:"descricao,omitempty" bson:"descricao,omitempty"`
	StartDate    *time.Time      `json:"dataInicio,omitempty" bson:"data_inicio,omitempty"`
	PlannedEnd   *time.Time      `json:"dataTerminoPrevista,omitempty" bson:"data_termino_prevista,omitempty"`
	ActualEnd    *time.Time      `json:"dataTerminoReal,omitempty" bson:"data_termino_real,omitempty"`
	Budget       float64         `json:"orcamento,omitempty" bson:"orcamento,omitempty"`
	Status       ProjectStatus   `json:"status" bson:"status"`
	Priority     ProjectPriority `json:"prioridade" bson:"prioridade"`
	CreatedAt    time.Time       `json:"dataCadastro" bson:"data_cadastro"`
}
