package main

// GlobalConfig is the [global] section of a train_classifiers config file,
// loaded through config.LoadConfigFile as gcfg-formatted configuration.
type GlobalConfig struct {
	CorpusPath string
	OutputDir  string
	Languages  []string
	LogFile    string
}

// Config is the top-level train_classifiers config shape.
type Config struct {
	Global GlobalConfig
}
