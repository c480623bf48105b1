package models

import "github.com/m04kA/SMC-CallCenterService/internal/domain"

// ClassifyResponse результат классификации звонящего по номеру полиса
type ClassifyResponse struct {
	Category domain.CustomerCategory `json:"tipo_cliente"`
	Prefix   string                  `json:"polizza_prefix"`
}
