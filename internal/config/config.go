package config

import "github.com/spf13/viper"

// Config holds the settings shared by the vehicles, pricing and maps services.
type Config struct {
	DBSource             string `mapstructure:"DB_SOURCE"`
	ServerAddress        string `mapstructure:"SERVER_ADDRESS"`
	PricingServerAddress string `mapstructure:"PRICING_SERVER_ADDRESS"`
	MapsServerAddress    string `mapstructure:"MAPS_SERVER_ADDRESS"`
	PricingServiceURL    string `mapstructure:"PRICING_SERVICE_URL"`
	MapsServiceURL       string `mapstructure:"MAPS_SERVICE_URL"`
}

// LoadConfig reads configuration from app.env in the given directory, with
// environment variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
