package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.NeedsDatabase() && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when records.driver or access.pin_registry is %q", RecordsDriverPostgres)
	}

	if err := c.Records.validate(); err != nil {
		return fmt.Errorf("records: %w", err)
	}
	if err := c.ObjectStore.validate(); err != nil {
		return fmt.Errorf("object_store: %w", err)
	}
	if err := c.Access.validate(); err != nil {
		return fmt.Errorf("access: %w", err)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be > 0 (got %d)", c.Upload.MaxBytes)
	}
	for name, policy := range map[string]string{
		"records_user_archived": c.Visibility.RecordsUserArchived,
		"portal_user_archived":  c.Visibility.PortalUserArchived,
	} {
		if policy != ArchivedShow && policy != ArchivedHide {
			return fmt.Errorf("visibility.%s must be %q or %q (got %q)", name, ArchivedShow, ArchivedHide, policy)
		}
	}

	return nil
}

func (r *RecordsConfig) validate() error {
	switch r.Driver {
	case RecordsDriverSnapshot:
		if strings.TrimSpace(r.SnapshotPath) == "" {
			return fmt.Errorf("snapshot_path is required for the %q driver", RecordsDriverSnapshot)
		}
		if strings.TrimSpace(r.TombstonePath) == "" {
			return fmt.Errorf("tombstone_path is required for the %q driver", RecordsDriverSnapshot)
		}
		if r.SnapshotPath == r.TombstonePath {
			return fmt.Errorf("snapshot_path and tombstone_path must differ")
		}
	case RecordsDriverPostgres:
	default:
		return fmt.Errorf("unknown driver %q", r.Driver)
	}
	return nil
}

func (o *ObjectStoreConfig) validate() error {
	if o.Prefix == "" || !strings.HasSuffix(o.Prefix, "/") || strings.HasPrefix(o.Prefix, "/") {
		return fmt.Errorf("prefix must be a relative key prefix ending in '/' (got %q)", o.Prefix)
	}

	switch o.Driver {
	case ObjectStoreLocalFS:
		if strings.TrimSpace(o.Root) == "" {
			return fmt.Errorf("root is required for the %q driver", ObjectStoreLocalFS)
		}
		if err := validateBaseURL(o.PublicBaseURL); err != nil {
			return err
		}
	case ObjectStoreGCS:
		if strings.TrimSpace(o.Bucket) == "" {
			return fmt.Errorf("bucket is required for the %q driver", ObjectStoreGCS)
		}
		if o.PublicBaseURL != "" {
			if err := validateBaseURL(o.PublicBaseURL); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown driver %q", o.Driver)
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute URL (got %q)", raw)
	}
	return nil
}

func (a *AccessConfig) validate() error {
	for name, code := range map[string]string{"user_passcode": a.UserPasscode, "admin_passcode": a.AdminPasscode} {
		if len(code) < 4 || len(code) > 8 {
			return fmt.Errorf("%s must be 4-8 characters (got %d)", name, len(code))
		}
	}
	if a.UserPasscode == a.AdminPasscode {
		return fmt.Errorf("user_passcode and admin_passcode must differ")
	}

	switch a.PinRegistry {
	case PinRegistryNone, PinRegistryPostgres:
	default:
		return fmt.Errorf("unknown pin_registry %q", a.PinRegistry)
	}
	return nil
}
