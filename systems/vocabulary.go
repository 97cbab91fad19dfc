package systems

// CodeTexts is the vocabulary of drifting snippet labels.
var CodeTexts = []string{
	"const App = () => {",
	"return <Component />",
	"useState()",
	"useEffect(() => {})",
	"export default",
	"import React from",
	`className="flex"`,
	"onClick={handle}",
	"<div>",
	"</div>",
	"async function",
	"await fetch()",
	"map((item) =>",
	"filter(x => x)",
	"props.children",
	"useMemo(() => {})",
	"useCallback(fn)",
	"interface Props {",
	"type State = {",
	".then(res =>",
	".catch(err =>",
	"try { } catch",
	"if (condition)",
	"for (let i = 0)",
	"return null;",
	"// TODO:",
	"npm install",
	"git commit -m",
	"yarn build",
	"next dev",
	"{ ...spread }",
	"[...array]",
	"?.optional",
	"?? nullish",
	"Promise.all()",
	"Object.keys()",
	"console.log()",
	"setState(prev)",
	"React.memo()",
	"<Fragment>",
	"key={id}",
	"style={{ }}",
	"@keyframes spin",
	"flex-direction",
	"justify-content",
	"position: fixed",
	"z-index: 9999",
	"border-radius",
	"linear-gradient",
	"var(--primary)",
	"@media (min-width)",
	":hover { }",
}

// SymbolGlyphs are the bracket and operator shapes of the floating symbols.
var SymbolGlyphs = []string{"{ }", "< />", "( )", "[ ]", "=>", "&&", "||", "==="}
