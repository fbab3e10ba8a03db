package semantic

import "strings"

// Profile carries the backend spellings of the reserved triad. Observable
// behavior of the emitted helpers is identical across backends; only these
// names differ.
type Profile struct {
	IDField      string
	TypeField    string
	ContextField string
	// FieldsExpr is the Python expression listing the declared field names of
	// an instance, used to reject unknown attribute keys.
	FieldsExpr string
}

// PydanticProfile is shared by the validated-model and XML-validated-model
// backends.
var PydanticProfile = Profile{
	IDField:      "ld_id",
	TypeField:    "ld_type",
	ContextField: "ld_context",
	FieldsExpr:   "self.model_fields",
}

// DataclassProfile is used by the plain-record backend.
var DataclassProfile = Profile{
	IDField:      "id",
	TypeField:    "__type__",
	ContextField: "__context__",
	FieldsExpr:   "self.__dataclass_fields__",
}

func (p Profile) expand(s string) string {
	return strings.NewReplacer(
		"$ID$", p.IDField,
		"$TYPE$", p.TypeField,
		"$CONTEXT$", p.ContextField,
		"$FIELDS$", p.FieldsExpr,
	).Replace(s)
}

// FilterWrapperBlock is the generic attribute filter woven into every
// generated module. It operates over any generated type: constraint keys are
// resolved by name and an undeclared key raises, naming the invalid key.
const FilterWrapperBlock = `# Filter Wrapper definition used to filter a list of objects
# based on their attributes
Cls = TypeVar("Cls")

class FilterWrapper(Generic[Cls]):
    """Wrapper class to filter a list of objects based on their attributes"""

    def __init__(self, collection: list[Cls], **kwargs):
        self.collection = collection
        self.kwargs = kwargs

    def filter(self) -> list[Cls]:
        for key, value in self.kwargs.items():
            self.collection = [
                item for item in self.collection if self._fetch_attr(key, item) == value
            ]
        return self.collection

    def _fetch_attr(self, name: str, item: Cls):
        if name not in type(item).model_fields:
            raise AttributeError(f"{type(item).__name__} does not have attribute {name}")
        return getattr(item, name)`

// filterWrapperFieldsExpr lets the plain-record profile swap the field lookup
// used by the filter while keeping the rest of the block byte-identical.
const filterWrapperPydanticLookup = "type(item).model_fields"
const filterWrapperDataclassLookup = "type(item).__dataclass_fields__"

// FilterWrapper renders the filter helper for a profile.
func (p Profile) FilterWrapper() string {
	if p.FieldsExpr == DataclassProfile.FieldsExpr {
		return strings.ReplaceAll(FilterWrapperBlock, filterWrapperPydanticLookup, filterWrapperDataclassLookup)
	}
	return FilterWrapperBlock
}

// LDHelpers renders the module-level JSON-LD helper functions. add_namespace
// is a no-op when both arguments are absent, fails when exactly one is
// present, and inserts or overwrites the prefix entry otherwise.
// validate_prefix rejects terms (plain or structured) not carrying the given
// prefix. Both checks run before any state change.
func (p Profile) LDHelpers() string {
	return p.expand(`# JSON-LD helper functions
def add_namespace(obj, prefix: str | None, iri: str | None):
    """Adds a namespace to the JSON-LD context

    Args:
        prefix (str): The prefix to add
        iri (str): The IRI to add
    """
    if prefix is None and iri is None:
        return
    elif prefix and iri is None:
        raise ValueError("If prefix is provided, iri must also be provided")
    elif iri and prefix is None:
        raise ValueError("If iri is provided, prefix must also be provided")

    obj.$CONTEXT$[prefix] = iri

def validate_prefix(term: str | dict, prefix: str):
    """Validates that a term is prefixed with a given prefix

    Args:
        term (str): The term to validate
        prefix (str): The prefix to validate against
    """

    if isinstance(term, dict) and not term["@id"].startswith(prefix + ":"):
        raise ValueError(f"Term {term} is not prefixed with {prefix}")
    elif isinstance(term, str) and not term.startswith(prefix + ":"):
        raise ValueError(f"Term {term} is not prefixed with {prefix}")`)
}

// MutationMethods renders the per-class set_attr_term and add_type_term
// operations. The unknown-attribute check and prefix validation run before
// the context map or type list is touched, so a failed call never leaves a
// partial mutation behind.
func (p Profile) MutationMethods() string {
	return p.expand(`    def set_attr_term(
        self,
        attr: str,
        term: str | dict,
        prefix: str | None = None,
        iri: str | None = None,
    ):
        """Sets the term for a given attribute in the JSON-LD object

        Example:
            # Using an IRI term
            >> obj.set_attr_term("name", "http://schema.org/givenName")

            # Using a prefix and term
            >> obj.set_attr_term("name", "schema:givenName", "schema", "http://schema.org")

            # Using a dictionary term
            >> obj.set_attr_term("name", {"@id": "http://schema.org/givenName", "@type": "@id"})

        Args:
            attr (str): The attribute to set the term for
            term (str | dict): The term to set for the attribute

        Raises:
            AssertionError: If the attribute is not found in the model
        """

        assert attr in $FIELDS$, f"Attribute {attr} not found in {self.__class__.__name__}"

        if prefix:
            validate_prefix(term, prefix)

        add_namespace(self, prefix, iri)
        self.$CONTEXT$[attr] = term

    def add_type_term(
        self,
        term: str,
        prefix: str | None = None,
        iri: str | None = None,
    ):
        """Adds a term to the @type field of the JSON-LD object

        Example:
            # Using a term
            >> obj.add_type_term("https://schema.org/Person")

            # Using a prefixed term
            >> obj.add_type_term("schema:Person", "schema", "https://schema.org/Person")

        Args:
            term (str): The term to add to the @type field
            prefix (str, optional): The prefix to use for the term. Defaults to None.
            iri (str, optional): The IRI to use for the term prefix. Defaults to None.

        Raises:
            ValueError: If prefix is provided but iri is not
            ValueError: If iri is provided but prefix is not
        """

        if prefix:
            validate_prefix(term, prefix)

        add_namespace(self, prefix, iri)
        self.$TYPE$.append(term)`)
}
