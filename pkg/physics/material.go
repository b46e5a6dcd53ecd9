package physics

// Material 单一材质的表面属性
type Material struct {
	Friction    float64
	Restitution float64
}

// ContactMaterial 两种材质接触时的属性
type ContactMaterial struct {
	Friction    float64
	Restitution float64
}

// DefaultContactMaterial 未登记材质之间的接触属性
var DefaultContactMaterial = ContactMaterial{Friction: 0.3, Restitution: 0.3}

type materialPair struct {
	a, b string
}

// ContactMaterialTable 预计算的材质两两接触表
type ContactMaterialTable struct {
	pairs map[materialPair]ContactMaterial
}

// NewContactMaterialTable 为每一对材质（含自身）预计算接触属性
// 摩擦系数与恢复系数均取两者平均值
func NewContactMaterialTable(materials map[string]Material) *ContactMaterialTable {
	t := &ContactMaterialTable{pairs: make(map[materialPair]ContactMaterial, len(materials)*len(materials))}
	for nameA, a := range materials {
		for nameB, b := range materials {
			t.pairs[materialPair{nameA, nameB}] = ContactMaterial{
				Friction:    (a.Friction + b.Friction) / 2,
				Restitution: (a.Restitution + b.Restitution) / 2,
			}
		}
	}
	return t
}

// Lookup 查询接触属性，未登记时返回 DefaultContactMaterial
func (t *ContactMaterialTable) Lookup(a, b string) ContactMaterial {
	if t == nil {
		return DefaultContactMaterial
	}
	if cm, ok := t.pairs[materialPair{a, b}]; ok {
		return cm
	}
	return DefaultContactMaterial
}

// Len 表项数量
func (t *ContactMaterialTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}
