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

type DiskTypeRepo interface {
	Create(tableName string, tx *gorm.DB, m *model.DiskType) error
	List() ([]model.DiskType, error)
	Get(name string) (*model.DiskType, error)
	CreateNewTable() (string, error)
	MoveViewTransaction(tableName string) error
	RemoveOldTables(currentTableName string) error
}

type DiskTypeRepoImpl struct {
	db *connector.Database

	viewName string
}

func NewDiskTypeRepo(db *connector.Database) DiskTypeRepo {
	stmt := &gorm.Statement{DB: db.Conn()}
	stmt.Parse(&model.DiskType{})

	return &DiskTypeRepoImpl{
		db: db,

		viewName: stmt.Schema.Table,
	}
}

func (r *DiskTypeRepoImpl) Create(tableName string, tx *gorm.DB, m *model.DiskType) error {
	if tx == nil {
		tx = r.db.Conn()
	}
	tx = tx.Table(tableName)
	return tx.Create(&m).Error
}

func (r *DiskTypeRepoImpl) List() ([]model.DiskType, error) {
	var m []model.DiskType
	tx := r.db.Conn().Table(r.viewName).Find(&m)
	return m, tx.Error
}

func (r *DiskTypeRepoImpl) Get(name string) (*model.DiskType, error) {
	var m model.DiskType
	tx := r.db.Conn().Table(r.viewName).Where("name=?", name).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &m, nil
}

func (r *DiskTypeRepoImpl) CreateNewTable() (string, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{})
	var diskTypeTable string
	for {
		id, err := sf.NextID()
		if err != nil {
			return "", err
		}

		diskTypeTable = fmt.Sprintf("%s_%s_%d",
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
	`, diskTypeTable)).First(&c)
		if tx.Error != nil {
			return "", err
		}
		if c == 0 {
			break
		}
	}

	err := r.db.Conn().Table(diskTypeTable).AutoMigrate(&model.DiskType{})
	if err != nil {
		return "", err
	}
	return diskTypeTable, nil
}

func (r *DiskTypeRepoImpl) MoveViewTransaction(tableName string) error {
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

func (r *DiskTypeRepoImpl) getOldTables(currentTableName string) ([]string, error) {
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

func (r *DiskTypeRepoImpl) RemoveOldTables(currentTableName string) error {
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
