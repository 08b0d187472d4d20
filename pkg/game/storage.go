package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "mergeball"

// OpenStorage 打开跨平台存储
//
// 打开失败时返回 nil 并记录警告，调用方进入降级模式（仅内存，不持久化）。
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (running without persistence)", err)
		return nil
	}
	return manager
}
