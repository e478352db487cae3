package domain

import "strings"

// ContractStatus is the lifecycle status of a claimed job.
type ContractStatus string

// Available contract statuses.
const (
	ContractActive    ContractStatus = "ACTIVE"
	ContractInactive  ContractStatus = "INACTIVE"
	ContractPending   ContractStatus = "PENDING"
	ContractCompleted ContractStatus = "COMPLETED"
	ContractCancelled ContractStatus = "CANCELLED"
)

// AllContractStatuses lists every status in display order.
var AllContractStatuses = []ContractStatus{
	ContractActive, ContractInactive, ContractPending, ContractCompleted, ContractCancelled,
}

// ParseContractStatus converts user input to a ContractStatus, case-insensitively.
// The American spelling "canceled" is accepted for CANCELLED.
func ParseContractStatus(s string) (ContractStatus, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "CANCELED" {
		return ContractCancelled, nil
	}
	for _, st := range AllContractStatuses {
		if string(st) == up {
			return st, nil
		}
	}
	return "", ErrInvalidInput
}

// IsValid returns true if the status is recognised.
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractActive, ContractInactive, ContractPending, ContractCompleted, ContractCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ContractStatus) String() string {
	return string(s)
}

// Label returns the display label the backend associates with the status.
func (s ContractStatus) Label() string {
	switch s {
	case ContractActive:
		return "Ativo"
	case ContractInactive:
		return "Inativo"
	case ContractPending:
		return "Pendente"
	case ContractCompleted:
		return "Concluído"
	case ContractCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// Contract is a job the user has claimed, joined with the job's details.
type Contract struct {
	Status      ContractStatus `json:"status"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	LinkHash    string         `json:"link_hash"`
	Link        string         `json:"link"`
	MinBudget   *float64       `json:"min_budget,omitempty"`
	MaxBudget   *float64       `json:"max_budget,omitempty"`
	ScrapedAt   Timestamp      `json:"scraped_at"`
	Skills      string         `json:"skills"`
	Source      string         `json:"source"`
}
