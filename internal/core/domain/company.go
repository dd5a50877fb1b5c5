package domain

import (
	"errors"
	"time"
)

var ErrCompanyNotFound = errors.New("company not found")
var ErrCompanyExists = errors.New("company already exists")

// Company is the tenant aggregate. Every non-global account and every
// project belongs to exactly one company.
type Company struct {
	ID             string     `json:"idEmpresa" bson:"_id,omitempty"`
	CNPJ           string     `json:"cnpj" bson:"cnpj"`
	LegalName      string     `json:"razaoSocial" bson:"razao_social"`
	TradeName      string     `json:"nomeFantasia,omitempty" bson:"nome_fantasia,omitempty"`
	StateRegistry  string     `json:"inscricaoEstadual,omitempty" bson:"inscricao_estadual,omitempty"`
	CityRegistry   string     `json:"inscricaoMunicipal,omitempty" bson:"inscricao_municipal,omitempty"`
	Email          string     `json:"email" bson:"email"`
	Phone          string     `json:"telefone,omitempty" bson:"telefone,omitempty"`
	Street         string     `json:"endereco,omitempty" bson:"endereco,omitempty"`
	Number         string     `json:"numero,omitempty" bson:"numero,omitempty"`
	Complement     string     `json:"complemento,omitempty" bson:"complemento,omitempty"`
	District       string     `json:"bairro,omitempty" bson:"bairro,omitempty"`
	City           string     `json:"cidade,omitempty" bson:"cidade,omitempty"`
	State          string     `json:"estado,omitempty" bson:"estado,omitempty"`
	ZipCode        string     `json:"cep,omitempty" bson:"cep,omitempty"`
	EmployeeCount  int        `json:"quantidadeFuncionarios" bson:"quantidade_funcionarios"`
	Sector         string     `json:"setorAtuacao,omitempty" bson:"setor_atuacao,omitempty"`
	FoundedAt      *time.Time `json:"dataFundacao,omitempty" bson:"data_fundacao,omitempty"`
	CreatedAt      time.Time  `json:"dataCadastro" bson:"data_cadastro"`
	Active         bool       `json:"ativo" bson:"ativo"`
}
