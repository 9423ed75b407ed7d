package config

// Default values for the logging section
const (
	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)

// Default values for the backoff section
const (
	DefaultAlgorithm        = AlgorithmExponential
	DefaultInitialDelaySecs = 1.0
	DefaultExponentBase     = 2.0
	DefaultMaxDelaySecs     = 60.0
	DefaultMaxAttempts      = 10
)

// Supported backoff algorithm names. The set is closed: engine construction
// dispatches through a switch, never through dynamic lookup.
const (
	AlgorithmConstant    = "constant"
	AlgorithmExponential = "exponential"
	AlgorithmFibonacci   = "fibonacci"
	AlgorithmLILD        = "lild"
	AlgorithmLIMD        = "limd"
	AlgorithmMILD        = "mild"
	AlgorithmMIMD        = "mimd"
)

// Launch error policies for the executor
const (
	LaunchErrorPolicyAbort   = "abort"
	LaunchErrorPolicyConsume = "consume"
)

// EnvConfigPath is the environment variable checked for a config file path
const EnvConfigPath = "RETRIER_CONFIG_PATH"
