package database

import (
	"log"

	"carta-backend/internal/config"
	"carta-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the remote mirror and prepares the schema. Returns nil (and no
// error) when no DSN is configured: the service then runs purely in memory
// and every sync operation is a no-op.
func Init(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseDSN == "" {
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
	); err != nil {
		return nil, err
	}

	if err := installNotifyTriggers(db); err != nil {
		return nil, err
	}

	log.Println("[DB] Conexión establecida. Migración completada.")
	return db, nil
}

// installNotifyTriggers wires the change streams the realtime listeners
// consume: every row change on menu_items/orders is pushed as a pg_notify
// payload {"op": ..., "row": ...} on its table channel.
func installNotifyTriggers(db *gorm.DB) error {
	const notifyFn = `
CREATE OR REPLACE FUNCTION notify_table_change() RETURNS trigger AS $$
DECLARE
	payload jsonb;
BEGIN
	IF TG_OP = 'DELETE' THEN
		payload = jsonb_build_object('op', 'delete', 'row', to_jsonb(OLD));
	ELSIF TG_OP = 'INSERT' THEN
		payload = jsonb_build_object('op', 'insert', 'row', to_jsonb(NEW));
	ELSE
		payload = jsonb_build_object('op', 'update', 'row', to_jsonb(NEW));
	END IF;
	PERFORM pg_notify(TG_TABLE_NAME || '_changes', payload::text);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql;`

	if err := db.Exec(notifyFn).Error; err != nil {
		return err
	}

	for _, table := range []string{"menu_items", "orders"} {
		if err := db.Exec("DROP TRIGGER IF EXISTS " + table + "_notify ON " + table).Error; err != nil {
			return err
		}
		if err := db.Exec("CREATE TRIGGER " + table + "_notify AFTER INSERT OR UPDATE OR DELETE ON " +
			table + " FOR EACH ROW EXECUTE FUNCTION notify_table_change()").Error; err != nil {
			return err
		}
	}
	return nil
}
