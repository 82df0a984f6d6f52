package database

import (
	"fmt"
	"log"

	"laundry/config"
	"laundry/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.LaundryOrder{},
		&models.Income{},
	); err != nil {
		return err
	}

	// 兼容历史数据：老版本没有 payment_status 字段，按 paid 标志回填
	_ = DB.Model(&models.LaundryOrder{}).
		Where("payment_status IS NULL OR payment_status = ''").
		Update("payment_status", models.PaymentPending).Error
	_ = DB.Model(&models.LaundryOrder{}).
		Where("paid = ?", true).
		Update("payment_status", models.PaymentPaid).Error

	// 初始化默认管理员（仅当不存在时）
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username: "admin",
			Password: string(hashed),
			Role:     models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("已创建默认管理员: admin / admin123，请尽快修改密码")
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
