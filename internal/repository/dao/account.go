package dao

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"time"

	"github.com/ego-component/egorm"
)

const (
	KEYSIZE = 32
)

var _ ChannelAccountDAO = (*channelAccountDAO)(nil)

type channelAccountDAO struct {
	db         *egorm.Component
	encryptKey []byte
}

// Create 创建渠道账号，账号配置加密后落库
func (dao *channelAccountDAO) Create(ctx context.Context, account ChannelAccount) (ChannelAccount, error) {
	now := time.Now().UnixMilli()
	account.Ctime = now
	account.Utime = now

	plainConfig := account.AccountConfig
	encryptedConfig, err := dao.encrypt(plainConfig)
	if err != nil {
		return ChannelAccount{}, err
	}
	account.AccountConfig = encryptedConfig

	if err = dao.db.WithContext(ctx).Create(&account).Error; err != nil {
		return ChannelAccount{}, err
	}

	account.AccountConfig = plainConfig
	return account, nil
}

// FindByID 根据ID查找未删除的账号
func (dao *channelAccountDAO) FindByID(ctx context.Context, id int64) (ChannelAccount, error) {
	var account ChannelAccount
	err := dao.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, notDeleted).
		First(&account).Error
	if err != nil {
		return ChannelAccount{}, err
	}
	return dao.decryptAccount(account)
}

// FindByChannel 查找指定渠道下所有未删除的账号
func (dao *channelAccountDAO) FindByChannel(ctx context.Context, sendChannel int32) ([]ChannelAccount, error) {
	var accounts []ChannelAccount
	err := dao.db.WithContext(ctx).
		Where("send_channel = ? AND is_deleted = ?", sendChannel, notDeleted).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		accounts[i], err = dao.decryptAccount(accounts[i])
		if err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// Delete 软删除
func (dao *channelAccountDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Model(&ChannelAccount{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": deleted,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (dao *channelAccountDAO) decryptAccount(account ChannelAccount) (ChannelAccount, error) {
	if account.AccountConfig == "" {
		return account, nil
	}
	plain, err := dao.decrypt(account.AccountConfig)
	if err != nil {
		return ChannelAccount{}, err
	}
	account.AccountConfig = plain
	return account, nil
}

// encrypt 使用AES-GCM加密
func (dao *channelAccountDAO) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(dao.encryptKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decrypt 使用AES-GCM解密
func (dao *channelAccountDAO) decrypt(encrypted string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(dao.encryptKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return "", errors.New("ciphertext太短了")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertext = ciphertext[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

func NewChannelAccountDAO(db *egorm.Component, encryptKey string) ChannelAccountDAO {
	// 确保加密密钥长度为32字节
	key := make([]byte, KEYSIZE)
	copy(key, encryptKey)
	return &channelAccountDAO{
		db:         db,
		encryptKey: key,
	}
}

const (
	notDeleted int8 = 0
	deleted    int8 = 1
)

// ChannelAccount 渠道账号模型
type ChannelAccount struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;comment:'账号ID'"`
	Name          string `gorm:"type:VARCHAR(64);NOT NULL;comment:'账号名称'"`
	SendChannel   int32  `gorm:"type:INT;NOT NULL;index:idx_send_channel;comment:'渠道编码'"`
	AccountConfig string `gorm:"type:VARCHAR(2048);NOT NULL;comment:'账号配置JSON,加密'"`
	IsDeleted     int8   `gorm:"type:TINYINT;NOT NULL;DEFAULT:0;comment:'是否删除'"`
	Ctime         int64
	Utime         int64
}

// TableName 重命名表
func (ChannelAccount) TableName() string {
	return "channel_account"
}
