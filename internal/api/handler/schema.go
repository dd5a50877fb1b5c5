package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// idResponse is returned by create endpoints.
type idResponse struct {
	ID string `json:"id"`
}

// --- Company ---

type companyRequest struct {
	CNPJ          string     `json:"cnpj"          validate:"required"`
	LegalName     string     `json:"razaoSocial"   validate:"required"`
	TradeName     string     `json:"nomeFantasia"`
	StateRegistry string     `json:"inscricaoEstadual"`
	CityRegistry  string     `json:"inscricaoMunicipal"`
	Email         string     `json:"email"         validate:"required,email"`
	Phone         string     `json:"telefone"`
	Street        string     `json:"endereco"`
	Number        string     `json:"numero"`
	Complement    string     `json:"complemento"`
	District      string     `json:"bairro"`
	City          string     `json:"cidade"`
	State         string     `json:"estado"`
	ZipCode       string     `json:"cep"`
	EmployeeCount int        `json:"quantidadeFuncionarios"`
	Sector        string     `json:"setorAtuacao"`
	FoundedAt     *time.Time `json:"dataFundacao"`
}

// --- Client ---

type clientRequest struct {
	CompanyID  *string    `json:"idEmpresa"`
	Name       string     `json:"nome"           validate:"required"`
	Email      string     `json:"email"          validate:"required,email"`
	Phone      string     `json:"telefone"`
	CPF        string     `json:"cpf"            validate:"required"`
	BirthDate  *time.Time `json:"dataNascimento"`
	Position   string     `json:"cargo"`
	Department string     `json:"departamento"`
	Role       string     `json:"role"           validate:"omitempty,oneof=REGULAR ADMIN SUPER_ADMIN"`
	Password   string     `json:"senha"`
}

// --- Project ---

type projectRequest struct {
	CompanyID   string     `json:"idEmpresa"  validate:"required"`
	ManagerID   string     `json:"idGerente"`
	Title       string     `json:"titulo"     validate:"required"`
	Description string     `json:"descricao"`
	StartDate   *time.Time `json:"dataInicio"`
	PlannedEnd  *time.Time `json:"dataTerminoPrevista"`
	ActualEnd   *time.Time `json:"dataTerminoReal"`
	Budget      float64    `json:"orcamento"`
	Status      string     `json:"status"     validate:"omitempty,oneof=PLANEJAMENTO EM_ANDAMENTO PAUSADO CONCLUIDO CANCELADO"`
	Priority    string     `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
}

// --- Activity / SubActivity ---

type activityRequest struct {
	AssigneeID   string     `json:"idResponsavel"`
	Title        string     `json:"titulo"     validate:"required"`
	Description  string     `json:"descricao"`
	PlannedStart *time.Time `json:"dataInicioPrevista"`
	PlannedEnd   *time.Time `json:"dataTerminoPrevista"`
	ActualEnd    *time.Time `json:"dataTerminoReal"`
	Status       string     `json:"status"     validate:"omitempty,oneof=PENDENTE EM_ANDAMENTO CONCLUIDA"`
	Priority     string     `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
}

type subActivityRequest struct {
	Title        string     `json:"titulo"     validate:"required"`
	Description  string     `json:"descricao"`
	PlannedStart *time.Time `json:"dataInicioPrevista"`
	PlannedEnd   *time.Time `json:"dataTerminoPrevista"`
	ActualEnd    *time.Time `json:"dataTerminoReal"`
	Status       string     `json:"status"     validate:"omitempty,oneof=PENDENTE EM_ANDAMENTO CONCLUIDA"`
	Priority     string     `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
}
