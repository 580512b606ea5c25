package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-metadata-sync/config"
	"task-metadata-sync/internal/app"
	"task-metadata-sync/internal/model"
	"task-metadata-sync/pkg/log"
)

func vaultConfig(root string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreDriverVault
	cfg.Store.Vault.Root = root
	cfg.Rules.Timezone = "UTC"
	cfg.Rules.OperationMappings = []model.OperationMapping{
		{Operation: model.OperationCountOpen, Key: "open", Overwrite: true, Enabled: true},
	}
	return cfg
}

func TestNew_VaultEndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "todo.md"), []byte("- [ ] a\n- [ ] b\n"), 0o644))

	c, err := app.New(vaultConfig(root), log.NewNop(), nil)
	require.NoError(t, err)
	defer c.UseCase.Close()

	out, err := c.UseCase.ProcessAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Written())

	raw, err := os.ReadFile(filepath.Join(root, "todo.md"))
	require.NoError(t, err)
	assert.Equal(t, "---\nopen: 2\n---\n- [ ] a\n- [ ] b\n", string(raw))
}

func TestNewRepository_UnknownDriver(t *testing.T) {
	cfg := vaultConfig(t.TempDir())
	cfg.Store.Driver = "s3"

	_, err := app.NewRepository(cfg, log.NewNop())
	assert.Error(t, err)
}

func TestNewResolver_BadTimezone(t *testing.T) {
	cfg := vaultConfig(t.TempDir())
	cfg.Rules.Timezone = "Nowhere/Land"

	_, err := app.NewResolver(cfg, log.NewNop())
	assert.Error(t, err)
}

func TestReadyCheck(t *testing.T) {
	root := t.TempDir()
	check := app.ReadyCheck(vaultConfig(root))
	assert.NoError(t, check(context.Background()))

	missing := app.ReadyCheck(vaultConfig(filepath.Join(root, "missing")))
	assert.Error(t, missing(context.Background()))

	memosCfg := vaultConfig(root)
	memosCfg.Store.Driver = config.StoreDriverMemos
	assert.NoError(t, app.ReadyCheck(memosCfg)(context.Background()))
}
