package container

// Trigger is the text that caused another annotation to fire.
type Trigger struct {
	ClinicalAnnotation
	Source *string `acd:"source"`
}

// SectionTrigger is the heading that opened a Section.
type SectionTrigger struct {
	Trigger
	SectionNormalizedName *string `acd:"sectionNormalizedName"`
}

// Section is a titled region of a document.
type Section struct {
	ClinicalAnnotation
	Trigger        *SectionTrigger `acd:"trigger"`
	SectionType    *string         `acd:"sectionType"`
	ApplyOnlyToACI *bool           `acd:"applyOnlyToACI"`
}

// NluEntity is an entity found by a general-purpose NLU service.
type NluEntity struct {
	ClinicalAnnotation
	Relevance *float64 `acd:"relevance"`
	Source    *string  `acd:"source"`
}

// Reference points at another annotation by uid.
type Reference struct {
	UID  int     `acd:"uid,required"`
	Type *string `acd:"type"`
	Extensible
}

// RelationNode is one end of a Relation.
type RelationNode struct {
	Entity
	Target *Reference `acd:"entity"`
}

// Relation links two or more annotations.
type Relation struct {
	Entity
	Source *string         `acd:"source"`
	Score  *float64        `acd:"score"`
	Nodes  []*RelationNode `acd:"nodes,required"`
}

// SpellingCorrectionSuggestion is one candidate replacement.
type SpellingCorrectionSuggestion struct {
	Entity
	Applied    bool     `acd:"applied,required"`
	Confidence float64  `acd:"confidence,required"`
	Semtypes   []string `acd:"semtypes"`
	Text       *string  `acd:"text"`
}

// SpellingCorrection marks a misspelled span.
type SpellingCorrection struct {
	Annotation
	Suggestions []*SpellingCorrectionSuggestion `acd:"suggestions"`
}

// SpellCorrectedText is the document text after corrections were applied.
type SpellCorrectedText struct {
	Entity
	CorrectedText *string `acd:"correctedText"`
	DebugText     *string `acd:"debugText"`
}

// SubjectConceptRelationship names who a Concept is about.
type SubjectConceptRelationship struct {
	ClinicalAnnotation
	Reference *string  `acd:"reference"`
	Score     *float64 `acd:"score"`
	Term      *string  `acd:"term"`
}

// DisambiguationData records whether a mention was judged valid.
type DisambiguationData struct {
	Validity *string `acd:"validity"`
	Extensible
}

// Concept is a mention of a vocabulary concept.
type Concept struct {
	ClinicalAnnotation
	ComponentID        *string                     `acd:"componentId"`
	ConceptName        *string                     `acd:"conceptName"`
	Confidence         *float64                    `acd:"confidence"`
	CUI                *string                     `acd:"cui"`
	Links              *string                     `acd:"links"`
	Mappings           *string                     `acd:"mappings"`
	MentionType        *string                     `acd:"mentionType"`
	PreferredName      *string                     `acd:"preferredName"`
	SemanticType       *string                     `acd:"semanticType"`
	Source             *string                     `acd:"source"`
	SourceVersion      *string                     `acd:"sourceVersion"`
	Subject            *SubjectConceptRelationship `acd:"subject"`
	DisambiguationData *DisambiguationData         `acd:"disambiguationData"`
}

// ConceptValueEntry is one value of a ConceptValue.
type ConceptValueEntry struct {
	Value *string `acd:"value"`
	Unit  *string `acd:"unit"`
	Extensible
}

// ConceptValue is a measured or stated value attached to a concept.
type ConceptValue struct {
	ClinicalAnnotation
	CUI              *string              `acd:"cui"`
	Dimension        *string              `acd:"dimension"`
	PreferredName    *string              `acd:"preferredName"`
	Trigger          *string              `acd:"trigger"`
	Unit             *string              `acd:"unit"`
	Value            *string              `acd:"value"`
	RangeBegin       *string              `acd:"rangeBegin"`
	RangeEnd         *string              `acd:"rangeEnd"`
	Values           []*ConceptValueEntry `acd:"values"`
	ValuesFunction   *string              `acd:"valuesFunction"`
	Normality        *string              `acd:"normality"`
	NormalityTrigger *string              `acd:"normalityTrigger"`
}

// AttributeValueEntry is one value of an AttributeValue.
type AttributeValueEntry struct {
	Value     *string `acd:"value"`
	Unit      *string `acd:"unit"`
	Frequency *string `acd:"frequency"`
	Duration  *string `acd:"duration"`
	Dimension *string `acd:"dimension"`
	Extensible
}

// AttributeValueReference points at the annotation an attribute was derived from.
type AttributeValueReference struct {
	ValueIndex *int   `acd:"valueIndex"`
	UID        int    `acd:"uid,required"`
	Type       string `acd:"type,required"`
	Extensible
}

// AttributeValueQualifierEntry qualifies an AttributeValue.
type AttributeValueQualifierEntry struct {
	ClinicalAnnotation
	Value     *string `acd:"value"`
	Qualifier *string `acd:"qualifier"`
}

// AttributeValue is a derived clinical attribute such as a diagnosis.
type AttributeValue struct {
	ClinicalAnnotation
	Name               *string                         `acd:"name"`
	Identifier         *string                         `acd:"identifier"`
	PreferredName      *string                         `acd:"preferredName"`
	Values             []*AttributeValueEntry          `acd:"values"`
	Qualifiers         []*AttributeValueQualifierEntry `acd:"qualifiers"`
	Operator           *string                         `acd:"operator"`
	Normality          *string                         `acd:"normality"`
	NormalityOperator  *string                         `acd:"normalityOperator"`
	Mode               *string                         `acd:"mode"`
	Source             *string                         `acd:"source"`
	SourceVersion      *string                         `acd:"sourceVersion"`
	Concept            *Reference                      `acd:"concept"`
	ConceptValue       *Reference                      `acd:"conceptValue"`
	DisambiguationData *DisambiguationData             `acd:"disambiguationData"`
	DerivedFrom        []*AttributeValueReference      `acd:"derivedFrom"`
}

// HypotheticalSpan marks text under a hypothetical context.
type HypotheticalSpan struct {
	ClinicalAnnotation
}

// NegatedSpan marks text under a negation.
type NegatedSpan struct {
	ClinicalAnnotation
	Trigger *Trigger `acd:"trigger"`
}

// LabValueInd marks a lab value mention.
type LabValueInd struct {
	ClinicalAnnotation
}

// MedicationInd marks a medication mention.
type MedicationInd struct {
	ClinicalAnnotation
}

// ProcedureInd marks a procedure mention.
type ProcedureInd struct {
	ClinicalAnnotation
}

// SymptomDiseaseInd marks a symptom or disease mention.
type SymptomDiseaseInd struct {
	ClinicalAnnotation
}
