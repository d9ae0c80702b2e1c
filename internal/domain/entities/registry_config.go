package entities

// RegistryConfig is the public view of the engine configuration
type RegistryConfig struct {
	AdminAddress string `json:"adminAddress"`
	FeeAmount    string `json:"feeAmount"`
	RecordCount  int64  `json:"recordCount"`
}
