package config

import (
	"time"
)

type traceKey string

const (
	TRACE_ID_KEY traceKey = "traceId"

	//public API rate limiting, per client IP
	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	//search tiers
	FuzzyCutoff        = 0.4
	FuzzyMaxCandidates = 5
	FuzzyTriggerBelow  = 3

	//document extraction
	SummaryMaxChars      = 800
	PreviewUnavailable   = "내용을 미리볼 수 없습니다."
	DocumentFileName     = "index.html"
	DefaultExtractWorker = 8

	//card limits of the chat platform
	ListCardMaxItems      = 5
	ListItemTitleMaxChars = 35
	CardHeaderMaxChars    = 30
	CarouselMaxItems      = 10
	CardDescriptionChars  = 80

	//full-text search
	ContentSearchDefaultLimit = 10
	ContentSearchMaxLimit     = 20

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second
	ReloadJobTimeout       = 2 * time.Minute

	//server listening port
	ServerListenAddr   = ":8081"
	DefaultExternalURL = "http://localhost:8081"
	DefaultContentRoot = "HTML_Conversion"
	DefaultLogLevel    = "info"
	StaticPrefix       = "/static"

	//reload job buffer
	BufferLimit = 16

	//keep-alive
	KeepAliveInterval = 10 * time.Minute
	KeepAliveTimeout  = 15 * time.Second

	MaxIdleConns        = 10
	MaxIdleConnsPerHost = 2
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore    = 0
	RedisResultCache = 1

	RedisJobStoreTTL    = 24 * time.Hour
	RedisResultCacheTTL = 30 * time.Minute
	RedisPingTimeout    = 3 * time.Second
	RedisIOTimeout      = 2 * time.Second
)
