package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/config"
	"github.com/gzhole/labelshield/internal/store/redis"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show LabelShield status: catalog, packs, storage, cache, audit log",
	Long: `Check how LabelShield is configured: which catalog and packs are loaded,
where profiles and cached results are stored, and whether the audit log
exists.

  labelshield status`,
	RunE: statusCommand,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  ⚠  %v\n", err)
		return nil
	}

	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	fmt.Fprintln(out, "  LabelShield Status")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	binPath, err := os.Executable()
	if err != nil {
		binPath = "unknown"
	}
	fmt.Fprintf(out, "  Binary:    %s (%s)\n", binPath, Version)
	fmt.Fprintf(out, "  Config:    %s\n", cfg.ConfigDir)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "─── Catalog ───────────────────────────────────────────")
	checkCatalog(out, cfg)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "─── Storage ───────────────────────────────────────────")
	checkFile(out, "Database", cfg.DBPath, "created on first use")
	checkCache(out, cfg)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "─── Audit Log ─────────────────────────────────────────")
	checkFile(out, "Audit log", cfg.LogPath, "will start on first analysis")
	if cfg.LogRedaction {
		fmt.Fprintln(out, "  ✅ Redaction: on")
	} else {
		fmt.Fprintln(out, "  ⚠  Redaction: off (profiles are logged in clear)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "─── Server ────────────────────────────────────────────")
	fmt.Fprintf(out, "  ⬚  Listen address: %s\n", cfg.Server.Addr)
	fmt.Fprintln(out)

	return nil
}

func checkCatalog(out io.Writer, cfg *config.Config) {
	if _, err := os.Stat(cfg.CatalogPath); err == nil {
		fmt.Fprintf(out, "  ✅ Catalog file: %s\n", cfg.CatalogPath)
	} else {
		fmt.Fprintln(out, "  ⬚  Catalog file: using built-in defaults (no custom file)")
	}

	base, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(out, "  ❌ Catalog invalid: %v\n", err)
		return
	}

	merged, infos, err := catalog.LoadPacks(cfg.PacksDir, base)
	if err != nil {
		fmt.Fprintf(out, "  ❌ Packs failed to merge: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  ✅ Version %s: %d ingredients, %d risk tags\n",
		merged.Version(), len(merged.KnownIngredients()), len(merged.KnownTags()))

	if len(infos) == 0 {
		fmt.Fprintln(out, "  ⬚  No catalog packs installed")
		return
	}
	enabled, invalid := 0, 0
	for _, info := range infos {
		if info.Err != nil {
			invalid++
			continue
		}
		if info.Enabled {
			enabled++
		}
	}
	fmt.Fprintf(out, "  ✅ Catalog packs: %d installed, %d enabled\n", len(infos), enabled)
	if invalid > 0 {
		fmt.Fprintf(out, "  ⚠  %d pack(s) failed to load (see: labelshield pack list)\n", invalid)
	}
}

func checkCache(out io.Writer, cfg *config.Config) {
	switch cfg.Cache.Backend {
	case config.CacheNone:
		fmt.Fprintln(out, "  ⬚  Result cache: disabled")
	case config.CacheSQLite:
		fmt.Fprintf(out, "  ✅ Result cache: sqlite (ttl %s)\n", cfg.Cache.TTL)
	case config.CacheRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		cache, err := redis.New(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			fmt.Fprintf(out, "  ❌ Result cache: redis %s unreachable: %v\n", cfg.Cache.RedisAddr, err)
			return
		}
		_ = cache.Close()
		fmt.Fprintf(out, "  ✅ Result cache: redis %s (ttl %s)\n", cfg.Cache.RedisAddr, cfg.Cache.TTL)
	}
}

func checkFile(out io.Writer, name, path, missing string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(out, "  ⬚  %s: %s (not yet created, %s)\n", name, path, missing)
		return
	}

	sizeKB := info.Size() / 1024
	if sizeKB == 0 {
		fmt.Fprintf(out, "  ✅ %s: %s (<1 KB)\n", name, path)
	} else {
		fmt.Fprintf(out, "  ✅ %s: %s (%d KB)\n", name, path, sizeKB)
	}
}
