package container

import (
	"fmt"
	"reflect"
)

// ContainerGroup is the top level of a request or response body. Its schema
// is closed: keys other than "unstructured" and "structured" are rejected.
type ContainerGroup struct {
	Unstructured []*UnstructuredContainer `acd:"unstructured"`
	Structured   []*StructuredContainer   `acd:"structured"`
}

func (*ContainerGroup) model() {}

// Container holds the fields shared by both container kinds.
type Container struct {
	ID       *string        `acd:"id"`
	Type     *string        `acd:"type"`
	UID      *int           `acd:"uid"`
	Metadata map[string]any `acd:"metadata"`
	Extensible
}

// UnstructuredContainer is one text document and its annotations.
type UnstructuredContainer struct {
	Container
	Text string                     `acd:"text,required"`
	Data *UnstructuredContainerData `acd:"data"`
}

// EnsureData returns the container's data, creating an empty one if needed.
func (c *UnstructuredContainer) EnsureData() *UnstructuredContainerData {
	if c.Data == nil {
		c.Data = &UnstructuredContainerData{}
	}
	return c.Data
}

// Span returns the text covered by a, or false when a lies outside the text.
func (c *UnstructuredContainer) Span(a *Annotation) (string, bool) {
	return Substring(c.Text, a.begin, a.end)
}

// StructuredContainer is one free-form structured document.
type StructuredContainer struct {
	Container
	Data *StructuredContainerData `acd:"data"`
}

// EnsureData returns the container's data, creating an empty one if needed.
func (c *StructuredContainer) EnsureData() *StructuredContainerData {
	if c.Data == nil {
		c.Data = &StructuredContainerData{}
	}
	return c.Data
}

// StructuredContainerData declares no fields. Applications register the
// fields they consume with RegisterField.
type StructuredContainerData struct {
	Extensible
}

// UnstructuredContainerData holds the annotations of a document, keyed by
// category. Experimental indicator categories are registered dynamically and
// read with Indicator.
type UnstructuredContainerData struct {
	AttributeValues     []*AttributeValue     `acd:"attributeValues"`
	Concepts            []*Concept            `acd:"concepts"`
	ConceptValues       []*ConceptValue       `acd:"conceptValues"`
	HypotheticalSpans   []*HypotheticalSpan   `acd:"hypotheticalSpans"`
	Sections            []*Section            `acd:"sections"`
	NegatedSpans        []*NegatedSpan        `acd:"negatedSpans"`
	NluEntities         []*NluEntity          `acd:"nluEntities"`
	Relations           []*Relation           `acd:"relations"`
	SpellingCorrections []*SpellingCorrection `acd:"spellingCorrections"`
	SpellCorrectedText  []*SpellCorrectedText `acd:"spellCorrectedText"`
	TemporalSpans       []*TemporalData       `acd:"temporalSpans"`

	SymptomDiseaseInd []*SymptomDiseaseInd `acd:"SymptomDiseaseInd"`
	ProcedureInd      []*ProcedureInd      `acd:"ProcedureInd"`
	MedicationInd     []*MedicationInd     `acd:"MedicationInd"`
	LabValueInd       []*LabValueInd       `acd:"LabValueInd"`

	Extensible
}

// Indicator returns the annotations of a dynamically registered indicator
// category.
func (d *UnstructuredContainerData) Indicator(name string) []*ClinicalAnnotation {
	v, _ := d.fields[name].([]*ClinicalAnnotation)
	return v
}

// AddIndicator appends annotations to a registered indicator category.
func (d *UnstructuredContainerData) AddIndicator(name string, anns ...*ClinicalAnnotation) error {
	f, ok := schemaOf(reflect.TypeOf(*d)).byName[name]
	if !ok || !f.dynamic || f.ft.goType() != reflect.TypeOf([]*ClinicalAnnotation(nil)) {
		return newSchemaError(joinPath("UnstructuredContainerData", name), nil, "not a registered indicator category")
	}
	for i, a := range anns {
		if a == nil {
			return newSchemaError(indexPath(name, i), nil, "list items must not be null")
		}
	}
	d.put(name, append(d.Indicator(name), anns...))
	return nil
}

// ExperimentalIndicators are the indicator categories registered at init.
var ExperimentalIndicators = []string{
	"AllergyMedicationInd",
	"AllergyInd",
	"BathingAssistanceInd",
	"IcaCancerDiagnosisInd",
	"DressingAssistanceInd",
	"EatingAssistanceInd",
	"EjectionFractionInd",
	"EmailAddressInd",
	"PersonInd",
	"US_PhoneNumberInd",
	"LocationInd",
	"MedicalInstitutionInd",
	"OrganizationInd",
	"SeeingAssistanceInd",
	"SmokingInd",
	"ToiletingAssistanceInd",
	"WalkingAssistanceInd",
}

// RegisterIndicator adds an indicator category to UnstructuredContainerData.
// Like RegisterField it is meant for program startup.
func RegisterIndicator(name string) error {
	return RegisterField[UnstructuredContainerData](name, ListOf(RecordOf[ClinicalAnnotation]()))
}

func init() {
	builtin := []Model{
		&ContainerGroup{}, &UnstructuredContainer{}, &StructuredContainer{},
		&UnstructuredContainerData{}, &StructuredContainerData{},
		&Entity{}, &Annotation{}, &ClinicalAnnotation{},
		&Trigger{}, &SectionTrigger{}, &Section{}, &NluEntity{}, &Reference{},
		&RelationNode{}, &Relation{}, &SpellingCorrectionSuggestion{},
		&SpellingCorrection{}, &SpellCorrectedText{}, &SubjectConceptRelationship{},
		&DisambiguationData{}, &Concept{}, &ConceptValueEntry{}, &ConceptValue{},
		&AttributeValueEntry{}, &AttributeValueReference{},
		&AttributeValueQualifierEntry{}, &AttributeValue{}, &HypotheticalSpan{},
		&NegatedSpan{}, &LabValueInd{}, &MedicationInd{}, &ProcedureInd{},
		&SymptomDiseaseInd{}, &TemporalType{}, &TemporalRelTypes{}, &TemporalData{},
		&InsightModelData{}, &InsightModelModifiers{},
		&InsightModelMedication{}, &InsightModelMedicationUsage{},
		&InsightModelMedicationLifecycleEvent{}, &InsightModelMedicationAdverseEvent{},
		&InsightModelDiagnosis{}, &InsightModelDiagnosisUsage{},
		&InsightModelProcedure{}, &InsightModelProcedureUsage{},
		&InsightModelProcedureTask{}, &InsightModelProcedureType{},
		&InsightModelNormality{}, &InsightModelNormalityUsage{},
		&InsightModelTobacco{}, &InsightModelTobaccoUsage{}, &InsightModelTobaccoUseStatus{},
		&InsightModelAlcohol{}, &InsightModelAlcoholUsage{}, &InsightModelAlcoholUseStatus{},
		&InsightModelAlcoholUseQualifier{},
		&InsightModelIllicitDrug{}, &InsightModelIllicitDrugUsage{},
		&InsightModelIllicitDrugUseStatus{}, &InsightModelIllicitDrugUseQualifier{},
		&InsightModelIllicitDrugUseDimension{},
	}
	for _, m := range builtin {
		schemaOf(reflect.TypeOf(m).Elem())
	}
	for _, name := range ExperimentalIndicators {
		if err := RegisterIndicator(name); err != nil {
			panic(fmt.Sprintf("container: registering %s: %v", name, err))
		}
	}
}
