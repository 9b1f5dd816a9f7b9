package config

// SystemConfig holds the platform-level ledger settings: transfer fee tiers,
// the wallet that collects fee revenue, and the admin credential that gates
// the statistics endpoint. Fee percentages are on a 0-100 scale.
type SystemConfig struct {
	SameUserFeePercent  float64
	CrossUserFeePercent float64
	SystemWalletAddress string
	AdminAPIKey         string
	InitialBalance      float64
	WalletLimit         int
}

// LoadSystemConfig reads the system configuration from the environment,
// falling back to the platform defaults.
func LoadSystemConfig() SystemConfig {
	return SystemConfig{
		SameUserFeePercent:  GetFloatEnv("SAME_USER_FEE_PERCENT", 0.0),
		CrossUserFeePercent: GetFloatEnv("CROSS_USER_FEE_PERCENT", 1.5),
		SystemWalletAddress: GetEnv("SYSTEM_WALLET_ADDRESS", "system-fee-wallet"),
		AdminAPIKey:         GetEnv("ADMIN_API_KEY", ""),
		InitialBalance:      GetFloatEnv("WALLET_INITIAL_BALANCE", 1.0),
		WalletLimit:         GetIntEnv("WALLET_LIMIT_PER_USER", 3),
	}
}
