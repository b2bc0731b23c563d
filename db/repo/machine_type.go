package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/gokulr94/gcp-performance-analyzer/db/connector"
	"github.com/gokulr94/gcp-performance-analyzer/db/model"
	"github.com/sony/sonyflake"
	"gorm.io/gorm"
)

type MachineTypeRepo interface {
	Create(tableName string, tx *gorm.DB, m *model.MachineType) error
	List() ([]model.MachineType, error)
	Get(name string) (*model.MachineType, error)
	ListByFamily(family string) ([]model.MachineType, error)
	CreateNewTable() (string, error)
	MoveViewTransaction(tableName string) error
	RemoveOldTables(currentTableName string) error
}

type MachineTypeRepoImpl struct {
	db *connector.Database

	viewName string
}

func NewMachineTypeRepo(db *connector.Database) MachineTypeRepo {
	stmt := &gorm.Statement{DB: db.Conn()}
	stmt.Parse(&model.MachineType{})

	return &MachineTypeRepoImpl{
		db: db,

		viewName: stmt.Schema.Table,
	}
}

func (r *MachineTypeRepoImpl) Create(tableName string, tx *gorm.DB, m *model.MachineType) error {
	if tx == nil {
		tx = r.db.Conn()
	}
	tx = tx.Table(tableName)
	return tx.Create(&m).Error
}

func (r *MachineTypeRepoImpl) List() ([]model.MachineType, error) {
	var m []model.MachineType
	tx := r.db.Conn().Table(r.viewName).Find(&m)
	return m, tx.Error
}

func (r *MachineTypeRepoImpl) Get(name string) (*model.MachineType, error) {
	var m model.MachineType
	tx := r.db.Conn().Table(r.viewName).Where("name=?", name).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &m, nil
}

func (r *MachineTypeRepoImpl) ListByFamily(family string) ([]model.MachineType, error) {
	var m []model.MachineType
	tx := r.db.Conn().Table(r.viewName).Where("machine_family=?", family).Find(&m)
	return m, tx.Error
}

func (r *MachineTypeRepoImpl) CreateNewTable() (string, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{})
	var machineTypeTable string
	for {
		id, err := sf.NextID()
		if err != nil {
			return "", err
		}

		machineTypeTable = fmt.Sprintf("%s_%s_%d",
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
	`, machineTypeTable)).First(&c)
		if tx.Error != nil {
			return "", err
		}
		if c == 0 {
			break
		}
	}

	err := r.db.Conn().Table(machineTypeTable).AutoMigrate(&model.MachineType{})
	if err != nil {
		return "", err
	}
	return machineTypeTable, nil
}

func (r *MachineTypeRepoImpl) MoveViewTransaction(tableName string) error {
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

func (r *MachineTypeRepoImpl) getOldTables(currentTableName string) ([]string, error) {
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

func (r *MachineTypeRepoImpl) RemoveOldTables(currentTableName string) error {
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
