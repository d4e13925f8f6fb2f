package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/kazqvaizer/kalinsky-maker/config"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
)

const (
	annotationSkipConfig   = "skipConfigLoad"
	annotationLogsToStdout = "logsToStdout"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads the configuration once and installs the process
// logger. Commands that print results keep stdout for themselves.
func (c *commandContext) ensureConfig(stdoutLogs bool) (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}

		opts := loggerOptions(cfg)
		if !stdoutLogs && opts.Output == "stdout" {
			opts.Output = "stderr"
		}
		if err := logger.Setup(opts); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig(false)
	return cfg
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	return hasAnnotation(cmd, annotationSkipConfig)
}

func logsToStdout(cmd *cobra.Command) bool {
	return hasAnnotation(cmd, annotationLogsToStdout)
}

func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations[key] == "true" {
			return true
		}
	}
	return false
}
