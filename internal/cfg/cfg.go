package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

type Config struct {
	Http      *HTTPConfig
	Db        *PGDBCfg
	Redis     *RedisCfg
	Queue     *QueueCfg
	Kafka     *KafkaCfg // nil, если KAFKA_BROKERS не задан
	Ml        *MLServiceCfg
	Generator *GeneratorCfg
	Search    *SearchCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisCfg struct {
	Addr              string
	Password          string
	User              string
	DB                int
	MaxRetries        int
	DialTimeout       time.Duration
	Timeout           time.Duration
	RecommendationTTL time.Duration
	ExplanationTTL    time.Duration
}

type QueueCfg struct {
	Addr       string
	Password   string
	DB         int
	QueueName  string        // имя списка Redis с usage-событиями
	PopTimeout time.Duration // таймаут ожидания BLPOP
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type MLServiceCfg struct {
	Addr           string // базовый URL HTTP API эмбеддера
	MaxRetries     int
	RequestTimeout time.Duration
	StartupRetries int           // попытки дождаться готовности при старте
	StartupDelay   time.Duration // фиксированная пауза между ними
}

type GeneratorCfg struct {
	APIURL         string
	APIKey         string
	Model          string
	MaxTokens      int
	Temperature    float64
	MaxAttempts    int
	BackoffUnit    time.Duration // базовая единица отступления: unit, 2*unit, 4*unit
	RequestTimeout time.Duration
}

type SearchCfg struct {
	Metric string // cosine | l2
	TopK   int
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	queue, err := loadQueueCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ml, err := loadMLServiceCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	generator, err := loadGeneratorCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	search, err := loadSearchCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:      http,
		Db:        db,
		Redis:     redis,
		Queue:     queue,
		Kafka:     kafka,
		Ml:        ml,
		Generator: generator,
		Search:    search,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 30 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr              = "localhost:6379"
		defaultDB                = 0
		defaultMaxRetries        = 3
		defaultDialTimeout       = 5 * time.Second
		defaultTimeout           = 3 * time.Second
		defaultRecommendationTTL = time.Hour
		defaultExplanationTTL    = time.Hour
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("REDIS_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid REDIS_MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("REDIS_DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DIAL_TIMEOUT")
		return nil, err
	}

	timeout, err := parseDurationEnv("REDIS_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_TIMEOUT")
		return nil, err
	}

	recommendationTTL, err := parseDurationEnv("RECOMMENDATION_TTL", defaultRecommendationTTL)
	if err != nil {
		log.Errorf(err, "invalid RECOMMENDATION_TTL")
		return nil, err
	}

	explanationTTL, err := parseDurationEnv("EXPLANATION_TTL", defaultExplanationTTL)
	if err != nil {
		log.Errorf(err, "invalid EXPLANATION_TTL")
		return nil, err
	}

	return &RedisCfg{
		Addr:              addr,
		Password:          password,
		User:              user,
		DB:                db,
		MaxRetries:        maxRetries,
		DialTimeout:       dialTimeout,
		Timeout:           timeout,
		RecommendationTTL: recommendationTTL,
		ExplanationTTL:    explanationTTL,
	}, nil
}

func loadQueueCfg(log logger.Logger) (*QueueCfg, error) {
	const (
		defaultQueueName  = "usage_queue"
		defaultPopTimeout = 5 * time.Second
	)

	addr := getEnvOrDefault("QUEUE_REDIS_ADDR", getEnvOrDefault("REDIS_ADDR", "localhost:6379"))

	db, err := parseIntEnv("QUEUE_REDIS_DB_ID", 0)
	if err != nil {
		log.Errorf(err, "invalid QUEUE_REDIS_DB_ID")
		return nil, err
	}

	popTimeout, err := parseDurationEnv("QUEUE_POP_TIMEOUT", defaultPopTimeout)
	if err != nil {
		log.Errorf(err, "invalid QUEUE_POP_TIMEOUT")
		return nil, err
	}

	return &QueueCfg{
		Addr:       addr,
		Password:   getEnv("QUEUE_REDIS_PASSWORD"),
		DB:         db,
		QueueName:  getEnvOrDefault("QUEUE_NAME", defaultQueueName),
		PopTimeout: popTimeout,
	}, nil
}

// loadKafkaCfg возвращает nil-конфигурацию, если брокеры не заданы:
// публикация обработанных событий — необязательная интеграция.
func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultTopic             = "usage-events"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, nil
	}
	brokers := strings.Split(brokerStr, ",")

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadMLServiceCfg(log logger.Logger) (*MLServiceCfg, error) {
	const (
		defaultAddr           = "http://ml-service:8000"
		defaultMaxRetries     = 3
		defaultRequestTimeout = 30 * time.Second
		defaultStartupRetries = 3
		defaultStartupDelay   = 10 * time.Second
	)

	maxRetries, err := parseIntEnv("ML_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid ML_MAX_RETRIES")
		return nil, err
	}

	requestTimeout, err := parseDurationEnv("ML_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		log.Errorf(err, "invalid ML_REQUEST_TIMEOUT")
		return nil, err
	}

	startupRetries, err := parseIntEnv("ML_STARTUP_RETRIES", defaultStartupRetries)
	if err != nil {
		log.Errorf(err, "invalid ML_STARTUP_RETRIES")
		return nil, err
	}

	startupDelay, err := parseDurationEnv("ML_STARTUP_DELAY", defaultStartupDelay)
	if err != nil {
		log.Errorf(err, "invalid ML_STARTUP_DELAY")
		return nil, err
	}

	return &MLServiceCfg{
		Addr:           strings.TrimRight(getEnvOrDefault("ML_ADDR", defaultAddr), "/"),
		MaxRetries:     maxRetries,
		RequestTimeout: requestTimeout,
		StartupRetries: startupRetries,
		StartupDelay:   startupDelay,
	}, nil
}

func loadGeneratorCfg(log logger.Logger) (*GeneratorCfg, error) {
	const (
		defaultAPIURL         = "https://api.openai.com/v1/chat/completions"
		defaultModel          = "gpt-3.5-turbo"
		defaultMaxTokens      = 150
		defaultTemperature    = "0.7"
		defaultMaxAttempts    = 3
		defaultBackoffUnit    = time.Second
		defaultRequestTimeout = 30 * time.Second
	)

	maxTokens, err := parseIntEnv("OPENAI_MAX_TOKENS", defaultMaxTokens)
	if err != nil {
		log.Errorf(err, "invalid OPENAI_MAX_TOKENS")
		return nil, err
	}

	temperature, err := strconv.ParseFloat(getEnvOrDefault("OPENAI_TEMPERATURE", defaultTemperature), 64)
	if err != nil {
		log.Errorf(err, "invalid OPENAI_TEMPERATURE")
		return nil, err
	}

	maxAttempts, err := parseIntEnv("GENERATOR_MAX_ATTEMPTS", defaultMaxAttempts)
	if err != nil {
		log.Errorf(err, "invalid GENERATOR_MAX_ATTEMPTS")
		return nil, err
	}

	backoffUnit, err := parseDurationEnv("GENERATOR_BACKOFF_UNIT", defaultBackoffUnit)
	if err != nil {
		log.Errorf(err, "invalid GENERATOR_BACKOFF_UNIT")
		return nil, err
	}

	requestTimeout, err := parseDurationEnv("OPENAI_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		log.Errorf(err, "invalid OPENAI_REQUEST_TIMEOUT")
		return nil, err
	}

	return &GeneratorCfg{
		APIURL:         getEnvOrDefault("OPENAI_API_URL", defaultAPIURL),
		APIKey:         getEnv("OPENAI_API_KEY"),
		Model:          getEnvOrDefault("OPENAI_MODEL", defaultModel),
		MaxTokens:      maxTokens,
		Temperature:    temperature,
		MaxAttempts:    maxAttempts,
		BackoffUnit:    backoffUnit,
		RequestTimeout: requestTimeout,
	}, nil
}

func loadSearchCfg() (*SearchCfg, error) {
	const (
		defaultMetric = "cosine"
		defaultTopK   = 5
	)

	topK, err := parseIntEnv("SEARCH_TOP_K", defaultTopK)
	if err != nil {
		return nil, e.Wrap("SEARCH_TOP_K", err)
	}

	return &SearchCfg{
		Metric: getEnvOrDefault("SEARCH_METRIC", defaultMetric),
		TopK:   topK,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
