package repo

import (
	"fmt"
	"time"

	"github.com/gokulr94/gcp-performance-analyzer/db/connector"
	"github.com/gokulr94/gcp-performance-analyzer/db/model"
	"github.com/sony/sonyflake"
	"gorm.io/gorm"
)

type MachineFamilyRepo interface {
	Create(tableName string, tx *gorm.DB, m *model.MachineFamily) error
	List() ([]model.MachineFamily, error)
	CreateNewTable() (string, error)
	MoveViewTransaction(tableName string) error
	RemoveOldTables(currentTableName string) error
}

type MachineFamilyRepoImpl struct {
	db *connector.Database

	viewName string
}

func NewMachineFamilyRepo(db *connector.Database) MachineFamilyRepo {
	stmt := &gorm.Statement{DB: db.Conn()}
	stmt.Parse(&model.MachineFamily{})

	return &MachineFamilyRepoImpl{
		db: db,

		viewName: stmt.Schema.Table,
	}
}

func (r *MachineFamilyRepoImpl) Create(tableName string, tx *gorm.DB, m *model.MachineFamily) error {
	if tx == nil {
		tx = r.db.Conn()
	}
	tx = tx.Table(tableName)
	return tx.Create(&m).Error
}

func (r *MachineFamilyRepoImpl) List() ([]model.MachineFamily, error) {
	var m []model.MachineFamily
	tx := r.db.Conn().Table(r.viewName).Find(&m)
	return m, tx.Error
}

func (r *MachineFamilyRepoImpl) CreateNewTable() (string, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{})
	var machineFamilyTable string
	for {
		id, err := sf.NextID()
		if err != nil {
			return "", err
		}

		machineFamilyTable = fmt.Sprintf("%s_%s_%d",
			r.viewName,
			time.Now().Format("2006_01_02"),
			id,
		)
		var c int32
		tx := r.db.Conn().Raw(fmt.Sprintf(`
		SELECT count(*)
		FROM information_schema.tables
		WHERE table_schema = current_schema
		AND table_name = '%s';
	`, machineFamilyTable)).First(&c)
		if tx.Error != nil {
			return "", err
		}
		if c == 0 {
			break
		}
	}

	err := r.db.Conn().Table(machineFamilyTable).AutoMigrate(&model.MachineFamily{})
	if err != nil {
		return "", err
	}
	return machineFamilyTable, nil
}

func (r *MachineFamilyRepoImpl) MoveViewTransaction(tableName string) error {
	tx := r.db.Conn().Begin()
	var err error
	defer func() {
		_ = tx.Rollback()
	}()

	dropViewQuery := fmt.Sprintf("DROP VIEW IF EXISTS %s", r.viewName)
	tx = tx.Exec(dropViewQuery)
	err = tx.Error
	if err != nil {
		return err
	}

	createViewQuery := fmt.Sprintf(`
  CREATE OR REPLACE VIEW %s AS
  SELECT *
  FROM %s;
`, r.viewName, tableName)

	tx = tx.Exec(createViewQuery)
	err = tx.Error
	if err != nil {
		return err
	}

	tx = tx.Commit()
	err = tx.Error
	if err != nil {
		return err
	}
	return nil
}

func (r *MachineFamilyRepoImpl) getOldTables(currentTableName string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema
		AND table_name LIKE '%s_%%' AND table_name <> '%s';
	`, r.viewName, currentTableName)

	var tableNames []string
	tx := r.db.Conn().Raw(query).Find(&tableNames)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tableNames, nil
}

func (r *MachineFamilyRepoImpl) RemoveOldTables(currentTableName string) error {
	tableNames, err := r.getOldTables(currentTableName)
	if err != nil {
		return err
	}
	for _, tn := range tableNames {
		err = r.db.Conn().Migrator().DropTable(tn)
		if err != nil {
			return err
		}
	}
	return nil
}
