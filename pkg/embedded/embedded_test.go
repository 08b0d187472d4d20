package embedded

import (
	"testing"
	"testing/fstest"
)

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Expected Init(nil) to leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset(t)

	_, err := ReadFile("data/balls.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
	if Exists("data/balls.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试读取与路径规范化
func TestReadFile(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"data/balls.yaml": &fstest.MapFile{Data: []byte("chain: []")},
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/balls.yaml", want: "chain: []"},
		{name: "带 ./ 前缀", path: "./data/balls.yaml", want: "chain: []"},
		{name: "未知前缀", path: "assets/balls.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
			if got := Exists(tt.path); got != !tt.wantErr {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, !tt.wantErr)
			}
		})
	}
}
