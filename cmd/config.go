package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaNotificationsTopic string
	OtpLength               int
	OtpValidMinutes         int
	StorageExpirationDays   int
	StorageWarningDays      int
	SweepCronSpec           string
	CheckinBaseURL          string
	AssetsDir               string
}
