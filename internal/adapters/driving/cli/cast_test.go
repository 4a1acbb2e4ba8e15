package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

func TestCastCmd_PrintsResult(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "cast")

	require.NoError(t, err)
	assert.Contains(t, out, "====== 起卦结果 ======")
	assert.Contains(t, out, "主卦: 水天需 (坎乾)")
	assert.Contains(t, out, "变卦: 雷天大壮 (震乾)")
	assert.Contains(t, out, "第4爻\n第5爻\n")
	assert.Contains(t, out, "第1爻: 硬币结果 正正反 -> 七 少阳\n")
	require.Len(t, ts.casting.castOpts, 1)
	assert.False(t, ts.casting.castOpts[0].Quiet)
	assert.Nil(t, ts.casting.castOpts[0].Seed)
}

func TestCastCmd_QuietAndSeed(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "cast", "--quiet", "--seed", "42")

	require.NoError(t, err)
	opts := ts.casting.castOpts[0]
	assert.True(t, opts.Quiet)
	require.NotNil(t, opts.Seed)
	assert.Equal(t, int64(42), *opts.Seed)
}

func TestCastCmd_SavedDefaults(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.Cast = domain.CastSettings{Seed: 7, Quiet: true}

	_, err := execute(t, "", "cast")

	require.NoError(t, err)
	opts := ts.casting.castOpts[0]
	assert.True(t, opts.Quiet)
	require.NotNil(t, opts.Seed)
	assert.Equal(t, int64(7), *opts.Seed)
}

func TestCastCmd_FlagsOverrideSaved(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.Cast = domain.CastSettings{Seed: 7, Quiet: true}

	_, err := execute(t, "", "cast", "--quiet=false", "--seed", "9")

	require.NoError(t, err)
	opts := ts.casting.castOpts[0]
	assert.False(t, opts.Quiet)
	assert.Equal(t, int64(9), *opts.Seed)
}

func TestCastCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "cast", "--json")

	require.NoError(t, err)
	assert.True(t, ts.casting.castOpts[0].Quiet)

	var got domain.CastingResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.HexagramCode("111010"), got.Primary.Code)
	assert.Equal(t, []int{3, 4}, got.Changing.Positions())
}

func TestCastCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "", "cast")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestCastCmd_EffectiveSettingsPreferred(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.Cast = domain.CastSettings{Seed: 7}
	effectiveSettings = &domain.AppSettings{Cast: domain.CastSettings{Seed: 11}}

	_, err := execute(t, "", "cast", "-q")

	require.NoError(t, err)
	assert.Equal(t, int64(11), *ts.casting.castOpts[0].Seed)
}
