package config

import (
	"os"
	"strconv"
)

// DevSessionSecret - значение по умолчанию для локальной разработки.
// В продакшене обязательно задавать SESSION_SECRET.
const DevSessionSecret = "for dev"

type Config struct {
	Port     string
	Database Database
	Session  Session
	Policy   Policy
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Session struct {
	Secret string
}

// Policy - явные ответы на спорные места исходного поведения:
// лайк без входа и удаление чужих комментариев закрыты по умолчанию,
// дневные лимиты по умолчанию выключены.
type Policy struct {
	LikeRequiresAuth bool
	DeleteOwnerOnly  bool
	OneCommentPerDay bool
	OneResultPerDay  bool
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "mathboard"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Session: Session{
			Secret: getEnv("SESSION_SECRET", DevSessionSecret),
		},
		Policy: Policy{
			LikeRequiresAuth: getEnvBool("LIKE_REQUIRES_AUTH", true),
			DeleteOwnerOnly:  getEnvBool("DELETE_OWNER_ONLY", true),
			OneCommentPerDay: getEnvBool("ONE_COMMENT_PER_DAY", false),
			OneResultPerDay:  getEnvBool("ONE_RESULT_PER_DAY", false),
		},
	}
}

func (s Session) InsecureSecret() bool {
	return s.Secret == DevSessionSecret
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
