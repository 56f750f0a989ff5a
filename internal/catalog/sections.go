package catalog

import "github.com/yarayan327-hash/math-test-KSA-material/internal/conic"

var sections = [...]Entry{
	conic.TopicHome: {
		Topic:  conic.TopicHome,
		Title:  "星际导航系统",
		Icon:   IconRocket,
		Accent: AccentWhite,
	},
	conic.TopicCircle: {
		Topic:     conic.TopicCircle,
		Title:     "圆 (Circle)",
		Formula:   "(x-a)² + (y-b)² = r²",
		RealWorld: "雷达扫描范围、车轮滚动、水波纹扩散",
		Icon:      IconCircle,
		Accent:    AccentNeonBlue,
		Modules: []Module{
			{
				ID:          1,
				Title:       "圆的方程",
				Duration:    "31 min",
				Level:       LevelBasic,
				KeyPoints:   []string{"定义：到圆心距离为常数", "标准方程推导", "一般方程互化", "圆锥曲线的特例"},
				Description: "圆是我们在宇宙中最完美的形状。它是所有圆锥曲线的起点，代表着完美的对称。",
			},
		},
	},
	conic.TopicEllipse: {
		Topic:     conic.TopicEllipse,
		Title:     "椭圆 (Ellipse)",
		Formula:   "x²/a² + y²/b² = 1",
		RealWorld: "行星运行轨道、回音壁效应、油罐车截面",
		Icon:      IconOrbit,
		Accent:    AccentNeonGreen,
		Modules: []Module{
			{
				ID:          2,
				Title:       "定义与标准方程",
				Duration:    "30 min",
				Level:       LevelBasic,
				KeyPoints:   []string{"定义：到两焦点距离和为常数", "方程推导", "长轴、短轴、离心率"},
				Description: "行星并非绕太阳做完美的圆周运动，而是椭圆。掌握它，你就能计算卫星轨道。",
			},
			{
				ID:          3,
				Title:       "焦点三角形",
				Duration:    "48 min",
				Level:       LevelBasic,
				KeyPoints:   []string{"几何性质", "余弦定理应用", "典型三点构形"},
				Description: "利用焦点和椭圆上一点构成的三角形，是解决几何难题的关键模型。",
			},
			{
				ID:          4,
				Title:       "焦半径与焦点弦",
				Duration:    "53 min",
				Level:       LevelIntermediate,
				KeyPoints:   []string{"焦半径公式", "焦点弦公式", "距离计算技巧"},
				Description: "深入计算天体距离核心的必备工具。",
			},
		},
	},
	conic.TopicHyperbola: {
		Topic:     conic.TopicHyperbola,
		Title:     "双曲线 (Hyperbola)",
		Formula:   "x²/a² - y²/b² = 1",
		RealWorld: "超音速音爆、冷却塔形状、罗兰导航系统",
		Icon:      IconActivity,
		Accent:    AccentNeonPink,
		Modules: []Module{
			{
				ID:          5,
				Title:       "定义与标准方程",
				Duration:    "39 min",
				Level:       LevelBasic,
				KeyPoints:   []string{"定义：距离差绝对值为常数", "标准方程(横/竖)", "渐近线概念"},
				Description: "当飞船速度超过逃逸速度，它的轨道就变成了双曲线，一去不复返。",
			},
			{
				ID:          6,
				Title:       "焦点三角形",
				Duration:    "45 min",
				Level:       LevelBasic,
				KeyPoints:   []string{"几何性质", "向量与余弦定理"},
				Description: "与椭圆类似的结构，但性质截然不同，注意符号的变化。",
			},
		},
	},
	conic.TopicParabola: {
		Topic:     conic.TopicParabola,
		Title:     "抛物线 (Parabola)",
		Formula:   "y² = 2px",
		RealWorld: "卫星天线、探照灯、投篮轨迹",
		Icon:      IconWifi,
		Accent:    AccentNeonYellow,
		Modules: []Module{
			{
				ID:          7,
				Title:       "定义与标准方程",
				Duration:    "32 min",
				Level:       LevelBasic,
				KeyPoints:   []string{"定义：到定点与定直线距离相等", "标准方程", "开口方向"},
				Description: "汇聚能量的完美曲线。所有的光线射入抛物面都会汇聚于焦点，这是通信的基础。",
			},
			{
				ID:          8,
				Title:       "焦半径与焦点弦",
				Duration:    "64 min",
				Level:       LevelIntermediate,
				KeyPoints:   []string{"焦半径公式", "焦点弦长度", "统一公式"},
				Description: "处理抛物线几何性质的核心计算技巧。",
			},
		},
	},
	conic.TopicAdvanced: {
		Topic:     conic.TopicAdvanced,
		Title:     "高阶·星际穿越",
		Formula:   "e = c/a",
		RealWorld: "多级火箭变轨、复杂引力弹弓",
		Icon:      IconZap,
		Accent:    AccentPurple,
		Modules: []Module{
			{
				ID:          9,
				Title:       "椭圆&双曲线综合",
				Duration:    "51 min",
				Level:       LevelIntermediate,
				KeyPoints:   []string{"离心率计算", "离心率范围", "代数几何融合"},
				Description: "离心率 e 决定了轨道的形状。掌握它，你就掌握了圆锥曲线的灵魂。",
			},
			{
				ID:          10,
				Title:       "高阶模型专题",
				Level:       LevelChallenge,
				KeyPoints:   []string{"定值问题 (寻找不变量)", "最值问题 (距离/极值)", "过定点直线", "三点共线", "四点共圆/双切线"},
				Description: "真正的指挥官挑战。解决这些问题需要综合运用点差法、参数法和极致的代数运算能力。",
			},
		},
	},
}
