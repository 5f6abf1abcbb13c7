package relation

// DecomposeBCNF splits the relation on the first BCNF violator of each relation in turn until
// none remain. A violator r splits its relation into projections onto r's attrs and onto the
// elements r does not create.
//
// Projected relations are not minimized before they are tested, so the final rule sets may
// be larger than necessary. A violator that creates nothing beyond its requires set leaves a
// relation over all of its parent's elements.
func (relation *Relation) DecomposeBCNF() (relations []*Relation) {
	relations = []*Relation{}
	queue := []*Relation{relation.Clone()}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		violator, found := r.FirstBCNFViolator()
		if !found {
			relations = append(relations, r)
			continue
		}
		r1 := r.Project(violator.Attrs())
		r2 := r.Project(r.Elements.Minus(violator.Creates))
		queue = append(queue, r1, r2)
	}
	return
}

// Decompose3NF returns a relation for each rule of the relation's compressed minimal basis,
// over that rule's attrs.
func (relation *Relation) Decompose3NF() (relations []*Relation) {
	basis := relation.WithRules(relation.MinimalBasis())
	basis.Compress()
	relations = make([]*Relation, 0, len(basis.Rules))
	for _, rule := range basis.Rules {
		relations = append(relations, New(rule.Attrs(), rule))
	}
	return
}
