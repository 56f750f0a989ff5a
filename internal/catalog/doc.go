// Package catalog is the read-only curriculum of the conics lab.
//
// Every [conic.Topic] maps to one [Entry]: a title, the canonical formula, a
// real-world analogy and an ordered list of lesson [Module] records. The
// table is built at init and never mutated; [Get] hands out copies.
//
//   - [Level]: closed difficulty scale 基础 / 中档 / 拔高
//   - [Icon], [Accent]: display tags resolved through fixed tables
//
// # Example
//
//	e, err := catalog.Get(conic.TopicEllipse)
//	if err != nil {
//		return err
//	}
//	fmt.Println(e.Title, e.Formula) // 椭圆 (Ellipse) x²/a² + y²/b² = 1
package catalog
