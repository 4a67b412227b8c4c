package contact

type (
	// Request is the create payload. Latitude/Longitude are optional:
	// when absent the service derives them from the address.
	Request struct {
		Name         string   `json:"name"`
		CPF          string   `json:"cpf"`
		Phone        string   `json:"phone"`
		Street       string   `json:"street"`
		Number       string   `json:"number"`
		Complement   string   `json:"complement"`
		Neighborhood string   `json:"neighborhood"`
		City         string   `json:"city"`
		State        string   `json:"state"`
		ZipCode      string   `json:"zip_code"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
	}

	// UpdateRequest is a partial payload; absent fields keep the stored
	// value. The CPF is immutable and cannot be sent here.
	UpdateRequest struct {
		Name         *string  `json:"name"`
		Phone        *string  `json:"phone"`
		Street       *string  `json:"street"`
		Number       *string  `json:"number"`
		Complement   *string  `json:"complement"`
		Neighborhood *string  `json:"neighborhood"`
		City         *string  `json:"city"`
		State        *string  `json:"state"`
		ZipCode      *string  `json:"zip_code"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
	}
)
