package check_polizza

import "github.com/m04kA/SMC-CallCenterService/internal/api/handlers"

// CheckPolizzaRequest HTTP request model
type CheckPolizzaRequest struct {
	NumeroPolizza handlers.FlexString `json:"numero_polizza"`
}

// CheckPolizzaResponse HTTP response model, код результата дублируется в поле status
type CheckPolizzaResponse struct {
	Status        int    `json:"status"`
	TipoCliente   string `json:"tipo_cliente,omitempty"`
	PolizzaPrefix string `json:"polizza_prefix,omitempty"`
	Error         string `json:"error,omitempty"`
}
