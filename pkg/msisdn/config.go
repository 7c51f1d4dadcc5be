package msisdn

// Config holds normaliser settings read from the environment.
type Config struct {
	CountryCode    string `env:"MSISDN_COUNTRY_CODE,required"`
	StripNonDigits bool   `env:"MSISDN_STRIP_NON_DIGITS" envDefault:"false"`
}
