package main

import (
	"os"
	"time"

	"github.com/huawei-od-man/basic-log/basiclog"
	"github.com/huawei-od-man/basic-log/config"
)

// Example demonstrating basic-log usage.
func main() {
	// Set the logging level to INFO
	// Usage: ./basic-log [configfile]
	// Example: ./basic-log ./basiclog.yaml
	basiclog.BasicConfig(basiclog.INFO)

	// A deferred flush still writes on early returns and panics.
	defer basiclog.Log(basiclog.INFO).Append("demo finished").Flush()

	if len(os.Args) > 1 {
		settings, err := config.Load(os.Args[1])
		if err != nil {
			basiclog.Log(basiclog.ERROR).Append("config:", err.Error()).Flush()
			os.Exit(1)
		}
		if err := settings.Apply(); err != nil {
			basiclog.Log(basiclog.ERROR).Append("config:", err.Error()).Flush()
			os.Exit(1)
		}
	}

	basiclog.Log(basiclog.INFO).Append("This is an info", 11, "message", 3.14555).Flush()
	basiclog.Log(basiclog.DEBUG).Append("This debug message will not be shown").Flush()
	basiclog.Log(basiclog.WARN).Append("This is a warning message", false).Flush()

	seq := basiclog.Seq[int]{1, 2, 3, 4, 5}
	basiclog.Log(basiclog.INFO).Append("Seq:", seq).Flush()

	basiclog.Log(basiclog.ERROR).Append("This is an error message", basiclog.MakePair(1, 2)).Flush()

	basiclog.Log(basiclog.FATAL).Append("This is a fatal message",
		basiclog.NewMap(basiclog.MakePair("key1", 1), basiclog.MakePair("key2", 2))).Flush()

	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.NewSet(1, 2, 3)).Flush()

	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.None[int]()).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Some(42)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Some("Hello, World!")).Flush()

	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Seconds(1)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Milliseconds(1000)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Microseconds(1000)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Nanoseconds(1000)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Hours(1)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", basiclog.Minutes(1)).Flush()
	basiclog.Log(basiclog.FATAL).Append("This is a fatal message", time.Now()).Flush()
}
