package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	for _, key := range []string{"ORACULO_STORE", "REDIS_ADDR", "ORACULO_KEY_PREFIX", "ORACULO_DRAW_COOLDOWN", "ORACULO_REVEAL_LOCK", "ORACULO_SEED"} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(StoreMemory, cfg.Store)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("oraculo:", cfg.KeyPrefix)
	s.Equal(1500*time.Millisecond, cfg.DrawCooldown)
	s.Equal(800*time.Millisecond, cfg.RevealLock)
	s.Zero(cfg.Seed)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("ORACULO_STORE", "redis")
	s.T().Setenv("REDIS_DB", "3")
	s.T().Setenv("ORACULO_DRAW_COOLDOWN", "2s")
	s.T().Setenv("ORACULO_SEED", "42")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(StoreRedis, cfg.Store)
	s.Equal(3, cfg.RedisDB)
	s.Equal(2*time.Second, cfg.DrawCooldown)
	s.Equal(int64(42), cfg.Seed)
}

func (s *ConfigTestSuite) TestRejectsUnknownStore() {
	s.T().Setenv("ORACULO_STORE", "postgres")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestRejectsMalformedDuration() {
	s.T().Setenv("ORACULO_REVEAL_LOCK", "soon")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	s.Require().NoError(LoadDotEnv(filepath.Join(s.T().TempDir(), "missing.env")))

	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("ORACULO_KEY_PREFIX=test:\n"), 0o600))
	s.T().Setenv("ORACULO_KEY_PREFIX", "")
	s.Require().NoError(os.Unsetenv("ORACULO_KEY_PREFIX"))

	s.Require().NoError(LoadDotEnv(path))
	s.Equal("test:", os.Getenv("ORACULO_KEY_PREFIX"))
}
