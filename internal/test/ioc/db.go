package testioc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecodeclub/resume-builder/internal/pkg/database"
	"github.com/ecodeclub/resume-builder/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var db *egorm.Component

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
	db = egorm.Load("mysql").Build()
	if err := db.Use(database.NewGormTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

// loadConfig 集成测试都在 internal/<module>/internal/integration 下面
// loadConfig 从当前目录往上找 config/local.yaml，测试可以在任意包里面跑
func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		content, err := os.ReadFile(filepath.Join(dir, "config", "local.yaml"))
		if err == nil {
			return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("找不到 config/local.yaml %w", err)
		}
		dir = parent
	}
}
