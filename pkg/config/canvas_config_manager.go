package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/splitcanvas/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// CanvasConfigPath 嵌入的变体配置文件路径
const CanvasConfigPath = "data/canvas_config.yaml"

// ErrVariantNotFound 请求的变体不存在
var ErrVariantNotFound = errors.New("canvas variant not found")

// canvasConfigFile 配置文件的顶层结构
type canvasConfigFile struct {
	DefaultVariant string         `yaml:"default_variant"`
	Variants       []CanvasConfig `yaml:"variants"`
}

// CanvasConfigManager 管理所有控制器变体
// 变体在加载时统一填充默认值并校验，之后只读
type CanvasConfigManager struct {
	defaultVariant string
	order          []string
	variants       map[string]CanvasConfig
}

// NewCanvasConfigManager 从嵌入文件系统加载变体配置
//
// 参数：
//   - path: 配置文件路径（如 "data/canvas_config.yaml"）
//
// 返回：
//   - *CanvasConfigManager: 配置管理器实例
//   - error: 读取、解析或校验错误
func NewCanvasConfigManager(path string) (*CanvasConfigManager, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	manager, err := ParseCanvasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("无法解析配置文件 %s: %w", path, err)
	}

	log.Printf("[Config] 加载画布配置: %s (%d 个变体, 默认 %s)", path, len(manager.order), manager.defaultVariant)
	return manager, nil
}

// ParseCanvasConfig 解析 YAML 格式的变体配置
func ParseCanvasConfig(data []byte) (*CanvasConfigManager, error) {
	var file canvasConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Variants) == 0 {
		return nil, fmt.Errorf("%w: no variants defined", ErrInvalidConfig)
	}

	manager := &CanvasConfigManager{
		variants: make(map[string]CanvasConfig, len(file.Variants)),
	}
	for i := range file.Variants {
		cfg := file.Variants[i]
		if cfg.Name == "" {
			return nil, fmt.Errorf("%w: variant #%d is missing 'name'", ErrInvalidConfig, i)
		}
		if _, dup := manager.variants[cfg.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate variant %q", ErrInvalidConfig, cfg.Name)
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		manager.variants[cfg.Name] = cfg
		manager.order = append(manager.order, cfg.Name)
	}

	manager.defaultVariant = file.DefaultVariant
	if manager.defaultVariant == "" {
		manager.defaultVariant = manager.order[0]
	}
	if _, ok := manager.variants[manager.defaultVariant]; !ok {
		return nil, fmt.Errorf("default_variant %q: %w", manager.defaultVariant, ErrVariantNotFound)
	}
	return manager, nil
}

// Get 按名称获取变体，空名称返回默认变体
func (m *CanvasConfigManager) Get(name string) (CanvasConfig, error) {
	if name == "" {
		name = m.defaultVariant
	}
	cfg, ok := m.variants[name]
	if !ok {
		return CanvasConfig{}, fmt.Errorf("%q: %w", name, ErrVariantNotFound)
	}
	return cfg, nil
}

// DefaultVariant 返回默认变体名称
func (m *CanvasConfigManager) DefaultVariant() string {
	return m.defaultVariant
}

// ListVariants 按文件中的顺序返回所有变体名称
func (m *CanvasConfigManager) ListVariants() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// NextVariant 返回 name 之后的变体名称（循环）
// name 不存在时返回默认变体
func (m *CanvasConfigManager) NextVariant(name string) string {
	for i, n := range m.order {
		if n == name {
			return m.order[(i+1)%len(m.order)]
		}
	}
	return m.defaultVariant
}
