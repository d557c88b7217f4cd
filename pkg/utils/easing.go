package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制过渡的速度曲线。
// 除 Lerp 外，所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
// NaN 返回 lo
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite 判断是否为有限数值（非 NaN、非 Inf）
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// EaseInPow 幂函数缓入
// 特点：power > 1 时开始慢，结束快
// 公式：f(t) = t^power
func EaseInPow(t, power float64) float64 {
	t = Clamp(t, 0, 1)
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(t, power)
}

// Smoothstep 三次 Hermite 插值
// x <= lo 返回 0，x >= hi 返回 1，中间单调递增
// 公式：t = (x-lo)/(hi-lo), f(t) = t²(3 - 2t)
func Smoothstep(lo, hi, x float64) float64 {
	t := Clamp((x-lo)/(hi-lo), 0, 1)
	return t * t * (3 - 2*t)
}

// FrameSmoothingFactor 与帧率无关的指数逼近系数
//
// retain 是 60Hz 参考帧率下每帧保留的比例，dt 是实际帧时长（秒）。
// 返回值用作 Lerp 的 t：current = Lerp(current, target, factor)
// 剩余距离按 retain^(dt*60) 衰减，因此任意帧率下衰减速度一致。
func FrameSmoothingFactor(retain, dt float64) float64 {
	if !IsFinite(dt) || dt <= 0 {
		return 0
	}
	return 1 - math.Pow(retain, dt*60)
}
